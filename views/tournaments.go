package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/allinlistings/admin/internal/catalog"
	"github.com/allinlistings/admin/internal/service"
)

func TournamentList(rows []catalog.TournamentRow, st ListState, siteBaseURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		b.s("<div class=\"page-head\"><h1>Tournaments</h1><a class=\"btn\" href=\"/dashboard/tournaments/new\">New tournament</a></div>")
		searchBox(b, "/dashboard/tournaments", st)
		b.s("<table><thead><tr>")
		sortHeader(b, "/dashboard/tournaments", st, "name", "Name")
		sortHeader(b, "/dashboard/tournaments", st, "casino", "Casino")
		b.s("<th>Event</th>")
		sortHeader(b, "/dashboard/tournaments", st, "date", "Date")
		sortHeader(b, "/dashboard/tournaments", st, "time", "Time")
		sortHeader(b, "/dashboard/tournaments", st, "buyin", "Buy-in")
		b.s("<th>Draft</th><th></th></tr></thead><tbody>")
		for _, row := range rows {
			b.s("<tr>")
			b.f("<td>%s</td>", esc(row.Name))
			b.f("<td>%s</td>", esc(row.CasinoName))
			b.f("<td>%s</td>", esc(orDash(row.EventName)))
			b.f("<td>%s</td>", fmtDate(row.Date))
			b.f("<td>%s</td>", esc(row.Time))
			b.f("<td>%s</td>", esc(row.Buyin))
			b.f("<td>%s</td>", yesNo(row.Draft))
			id := strconv.FormatInt(row.ID, 10)
			b.s("<td class=\"actions\">")
			b.f("<a href=\"/dashboard/tournaments/%s/edit\">Edit</a>", id)
			b.f("<a href=\"/dashboard/tournaments/%s/clone\">Clone</a>", id)
			b.f("<a href=\"%s\" target=\"_blank\" rel=\"noopener\">View</a>", esc(siteBaseURL+"/tournaments/"+row.Slug))
			b.f("<button hx-post=\"/dashboard/tournaments/%s/delete\" hx-confirm=\"%s\" hx-target=\"closest tr\" hx-swap=\"outerHTML\">Delete</button>", id, esc("Delete tournament \""+row.Name+"\"?"))
			b.s("</td>")
			b.s("</tr>")
		}
		b.s("</tbody></table>")
		pager(b, "/dashboard/tournaments", st)
		return b.err
	})
}

func TournamentForm(t *catalog.Tournament, casinos, events []catalog.Ref, res *service.UpsertResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		formOpen(b, "/dashboard/tournaments")
		resultBanner(b, res)
		if t.ID > 0 {
			hiddenID(b, strconv.FormatInt(t.ID, 10))
		}
		textField(b, res, "name", "Name", t.Name)
		textField(b, res, "slug", "Slug", t.Slug)
		refSelect(b, res, "casino_id", "Casino", casinos, t.CasinoID, t.CasinoID == 0)
		var eventID int64
		if t.EventID != nil {
			eventID = *t.EventID
		}
		refSelect(b, res, "event_id", "Event (optional)", events, eventID, true)
		date := ""
		if !t.Date.IsZero() {
			date = fmtDate(t.Date)
		}
		inputField(b, res, "date", "date", "Date", date)
		inputField(b, res, "time", "time", "Time", t.Time)
		textField(b, res, "buyin", "Buy-in", t.Buyin)
		textField(b, res, "fee", "Fee", deref(t.Fee))
		textField(b, res, "points", "Points", deref(t.Points))
		textField(b, res, "leveltime", "Level time", deref(t.LevelTime))
		textField(b, res, "punctuality", "Punctuality bonus", deref(t.Punctuality))
		textField(b, res, "bounty", "Bounty", deref(t.Bounty))
		textField(b, res, "registerlevels", "Register levels", deref(t.RegisterLevels))
		textArea(b, res, "content", "Content", deref(t.Content), true)
		checkboxField(b, "draft", "Draft", t.Draft)
		formClose(b, "Save tournament")
		return b.err
	})
}
