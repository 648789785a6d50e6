package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/allinlistings/admin/internal/catalog"
	"github.com/allinlistings/admin/internal/service"
)

func TourList(rows []catalog.Tour, st ListState, siteBaseURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		b.s("<div class=\"page-head\"><h1>Tours</h1><a class=\"btn\" href=\"/dashboard/tours/new\">New tour</a></div>")
		searchBox(b, "/dashboard/tours", st)
		b.s("<table><thead><tr>")
		sortHeader(b, "/dashboard/tours", st, "name", "Name")
		sortHeader(b, "/dashboard/tours", st, "slug", "Slug")
		b.s("<th></th></tr></thead><tbody>")
		for _, row := range rows {
			b.s("<tr>")
			b.f("<td>%s</td>", esc(row.Name))
			b.f("<td>%s</td>", esc(row.Slug))
			id := strconv.FormatInt(row.ID, 10)
			rowActions(b,
				"/dashboard/tours/"+id+"/edit",
				siteBaseURL+"/tours/"+row.Slug,
				"/dashboard/tours/"+id+"/delete",
				"Delete tour \""+row.Name+"\"?")
			b.s("</tr>")
		}
		b.s("</tbody></table>")
		pager(b, "/dashboard/tours", st)
		return b.err
	})
}

func TourForm(t *catalog.Tour, res *service.UpsertResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		formOpen(b, "/dashboard/tours")
		resultBanner(b, res)
		if t.ID > 0 {
			hiddenID(b, strconv.FormatInt(t.ID, 10))
		}
		textField(b, res, "name", "Name", t.Name)
		textField(b, res, "slug", "Slug", t.Slug)
		uploadWidget(b, res, "logo", "Logo", deref(t.Logo))
		formClose(b, "Save tour")
		return b.err
	})
}
