package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	users "github.com/allinlistings/admin/internal/user"
)

// UserList shows the dashboard administrators. Accounts are provisioned
// through OAuth login, so there is no create or delete action here.
func UserList(rows []users.User, st ListState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		b.s("<div class=\"page-head\"><h1>Users</h1></div>")
		searchBox(b, "/dashboard/users", st)
		b.s("<table><thead><tr><th></th>")
		sortHeader(b, "/dashboard/users", st, "username", "Username")
		sortHeader(b, "/dashboard/users", st, "email", "Email")
		sortHeader(b, "/dashboard/users", st, "created", "Joined")
		b.s("<th>Provider</th></tr></thead><tbody>")
		for _, row := range rows {
			b.s("<tr>")
			if row.AvatarURL != nil && *row.AvatarURL != "" {
				b.f("<td><img class=\"avatar\" src=\"%s\" alt=\"\"></td>", esc(*row.AvatarURL))
			} else {
				b.s("<td></td>")
			}
			b.f("<td>%s</td>", esc(row.Username))
			b.f("<td>%s</td>", esc(row.Email))
			b.f("<td>%s</td>", esc(ago(row.CreatedAt)))
			b.f("<td>%s</td>", esc(orDash(row.Provider)))
			b.s("</tr>")
		}
		b.s("</tbody></table>")
		pager(b, "/dashboard/users", st)
		return b.err
	})
}
