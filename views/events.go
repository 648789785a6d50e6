package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/allinlistings/admin/internal/catalog"
	"github.com/allinlistings/admin/internal/service"
)

func EventList(rows []catalog.EventRow, st ListState, siteBaseURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		b.s("<div class=\"page-head\"><h1>Events</h1><a class=\"btn\" href=\"/dashboard/events/new\">New event</a></div>")
		searchBox(b, "/dashboard/events", st)
		b.s("<table><thead><tr>")
		sortHeader(b, "/dashboard/events", st, "name", "Name")
		sortHeader(b, "/dashboard/events", st, "casino", "Casino")
		sortHeader(b, "/dashboard/events", st, "tour", "Tour")
		sortHeader(b, "/dashboard/events", st, "from", "From")
		sortHeader(b, "/dashboard/events", st, "to", "To")
		b.s("<th>Draft</th><th></th></tr></thead><tbody>")
		for _, row := range rows {
			b.s("<tr>")
			b.f("<td>%s</td>", esc(row.Name))
			b.f("<td>%s</td>", esc(row.CasinoName))
			b.f("<td>%s</td>", esc(row.TourName))
			b.f("<td>%s</td>", fmtDate(row.From))
			b.f("<td>%s</td>", fmtDate(row.To))
			b.f("<td>%s</td>", yesNo(row.Draft))
			id := strconv.FormatInt(row.ID, 10)
			rowActions(b,
				"/dashboard/events/"+id+"/edit",
				siteBaseURL+"/events/"+row.Slug,
				"/dashboard/events/"+id+"/delete",
				"Delete event \""+row.Name+"\"?")
			b.s("</tr>")
		}
		b.s("</tbody></table>")
		pager(b, "/dashboard/events", st)
		return b.err
	})
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func EventForm(e *catalog.Event, casinos, tours []catalog.Ref, res *service.UpsertResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		formOpen(b, "/dashboard/events")
		resultBanner(b, res)
		if e.ID > 0 {
			hiddenID(b, strconv.FormatInt(e.ID, 10))
		}
		textField(b, res, "name", "Name", e.Name)
		textField(b, res, "slug", "Slug", e.Slug)
		refSelect(b, res, "casino_id", "Casino", casinos, e.CasinoID, e.CasinoID == 0)
		refSelect(b, res, "tour_id", "Tour", tours, e.TourID, e.TourID == 0)
		from, to := "", ""
		if !e.From.IsZero() {
			from = fmtDate(e.From)
		}
		if !e.To.IsZero() {
			to = fmtDate(e.To)
		}
		inputField(b, res, "date", "from", "From", from)
		inputField(b, res, "date", "to", "To", to)
		checkboxField(b, "draft", "Draft", e.Draft)
		formClose(b, "Save event")
		return b.err
	})
}
