package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type navLink struct {
	href  string
	label string
}

var navLinks = []navLink{
	{"/dashboard/tournaments", "Tournaments"},
	{"/dashboard/events", "Events"},
	{"/dashboard/casinos", "Casinos"},
	{"/dashboard/tours", "Tours"},
	{"/dashboard/blog/posts", "Posts"},
	{"/dashboard/blog/categories", "Categories"},
	{"/dashboard/blog/tags", "Tags"},
	{"/dashboard/users", "Users"},
}

// Layout wraps a page body in the dashboard chrome.
func Layout(title string, active string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		b.s("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.s("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		b.f("<title>%s · Admin</title>", esc(title))
		b.s("<link rel=\"stylesheet\" href=\"/static/styles.css\">")
		b.s("<script src=\"https://unpkg.com/htmx.org@1.9.12\" defer></script>")
		b.s("</head><body>")

		b.s("<header class=\"topbar\"><a class=\"brand\" href=\"/\">Poker Admin</a><nav>")
		for _, link := range navLinks {
			cls := ""
			if link.href == active {
				cls = " class=\"active\""
			}
			b.f("<a%s href=\"%s\">%s</a>", cls, link.href, esc(link.label))
		}
		b.s("</nav>")
		if user := GetUser(ctx); user != nil {
			b.f("<span class=\"whoami\">%s</span>", esc(user.Username))
		}
		b.s("<form method=\"post\" action=\"/logout\"><button type=\"submit\">Log out</button></form>")
		b.s("</header><main>")
		if b.err != nil {
			return b.err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		b.s("</main></body></html>")
		return b.err
	})
}

func LoginPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		b.s("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"><title>Log in · Admin</title>")
		b.s("<link rel=\"stylesheet\" href=\"/static/styles.css\"></head><body class=\"login\">")
		b.s("<div class=\"login-card\"><h1>Poker Admin</h1>")
		b.s("<a class=\"btn\" href=\"/auth/google\">Continue with Google</a>")
		b.s("<a class=\"btn\" href=\"/auth/discord\">Continue with Discord</a>")
		b.s("</div></body></html>")
		return b.err
	})
}

func Index() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		b.s("<h1>Dashboard</h1><ul class=\"tiles\">")
		for _, link := range navLinks {
			b.f("<li><a href=\"%s\">%s</a></li>", link.href, esc(link.label))
		}
		b.s("</ul>")
		return b.err
	})
}
