package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/allinlistings/admin/internal/catalog"
	"github.com/allinlistings/admin/internal/service"
)

func CasinoList(rows []catalog.CasinoWithStars, st ListState, siteBaseURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		b.s("<div class=\"page-head\"><h1>Casinos</h1><a class=\"btn\" href=\"/dashboard/casinos/new\">New casino</a></div>")
		searchBox(b, "/dashboard/casinos", st)
		b.s("<table><thead><tr>")
		sortHeader(b, "/dashboard/casinos", st, "name", "Name")
		sortHeader(b, "/dashboard/casinos", st, "slug", "Slug")
		b.s("<th>Color</th><th>Rating</th><th></th></tr></thead><tbody>")
		for _, row := range rows {
			b.s("<tr>")
			b.f("<td>%s</td>", esc(row.Name))
			b.f("<td>%s</td>", esc(row.Slug))
			b.f("<td><span class=\"swatch\" style=\"background:%s\"></span> %s</td>", esc(row.Color), esc(row.Color))
			b.f("<td>%s</td>", esc(avgStars(row.Stars)))
			id := strconv.FormatInt(row.ID, 10)
			rowActions(b,
				"/dashboard/casinos/"+id+"/edit",
				siteBaseURL+"/casinos/"+row.Slug,
				"/dashboard/casinos/"+id+"/delete",
				"Delete casino \""+row.Name+"\"?")
			b.s("</tr>")
		}
		b.s("</tbody></table>")
		pager(b, "/dashboard/casinos", st)
		return b.err
	})
}

func avgStars(stars []catalog.CasinoStar) string {
	if len(stars) == 0 {
		return "—"
	}
	var total float64
	for _, star := range stars {
		total += star.Score
	}
	return strconv.FormatFloat(total/float64(len(stars)), 'f', 1, 64) + " ★"
}

func CasinoForm(c *catalog.Casino, res *service.UpsertResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		formOpen(b, "/dashboard/casinos")
		resultBanner(b, res)
		if c.ID > 0 {
			hiddenID(b, strconv.FormatInt(c.ID, 10))
		}
		textField(b, res, "name", "Name", c.Name)
		textField(b, res, "slug", "Slug", c.Slug)
		uploadWidget(b, res, "logo", "Logo", c.Logo)
		inputField(b, res, "color", "color", "Color", c.Color)
		textArea(b, res, "content", "Content", c.Content, true)
		formClose(b, "Save casino")
		return b.err
	})
}
