package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/allinlistings/admin/internal/service"
)

// uploadWidget implements the two-step manual image flow: pick a file,
// upload it to the CDN through the proxy route, and keep the returned URL in
// a hidden field that travels with the main form submission.
func uploadWidget(b *buf, res *service.UpsertResult, field, label, value string) {
	b.f("<div class=\"upload\" id=\"%s-upload\">", field)
	b.f("<input type=\"hidden\" name=\"%s\" value=\"%s\">", field, esc(value))
	if value != "" {
		b.f("<img class=\"preview\" src=\"%s\" alt=\"\">", esc(value))
	}
	b.f("<input type=\"file\" id=\"%s-file\" name=\"image\" accept=\"image/*\">", field)
	b.f("<button type=\"button\" hx-post=\"/dashboard/uploads?field=%s\" hx-encoding=\"multipart/form-data\" hx-include=\"#%s-file\" hx-target=\"#%s-upload\" hx-swap=\"outerHTML\" hx-disabled-elt=\"this\">Upload</button>",
		field, field, field)
	b.s("</div>")
	b.f("<p class=\"hint\">%s</p>", esc(label))
	fieldError(b, res, field)
}

// UploadResult re-renders the widget with the CDN URL (or an error) after
// the proxy call. errMsg empty means success.
func UploadResult(field, url, errMsg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		b.f("<div class=\"upload\" id=\"%s-upload\">", field)
		b.f("<input type=\"hidden\" name=\"%s\" value=\"%s\">", field, esc(url))
		if url != "" {
			b.f("<img class=\"preview\" src=\"%s\" alt=\"\">", esc(url))
		}
		if errMsg != "" {
			b.f("<p class=\"field-error\">%s</p>", esc(errMsg))
		}
		b.f("<input type=\"file\" id=\"%s-file\" name=\"image\" accept=\"image/*\">", field)
		b.f("<button type=\"button\" hx-post=\"/dashboard/uploads?field=%s\" hx-encoding=\"multipart/form-data\" hx-include=\"#%s-file\" hx-target=\"#%s-upload\" hx-swap=\"outerHTML\" hx-disabled-elt=\"this\">Upload</button>",
			field, field, field)
		b.s("</div>")
		return b.err
	})
}

// EventDeleteConfirmRow replaces the event row when the delete dry-run finds
// dependent tournaments; the second button repeats the call with force set.
func EventDeleteConfirmRow(id int64, count int, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		idStr := strconv.FormatInt(id, 10)
		b.f("<tr class=\"confirm\"><td colspan=\"7\">%s ", esc(msg))
		b.f("<button hx-post=\"/dashboard/events/%s/delete?force=true\" hx-target=\"closest tr\" hx-swap=\"outerHTML\">Delete %d tournament(s) and the event</button>", idStr, count)
		b.s("<a href=\"/dashboard/events\">Cancel</a>")
		b.s("</td></tr>")
		return b.err
	})
}

// ErrorRow is swapped in place of a row when a delete fails.
func ErrorRow(cols int, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		errorRow(b, cols, msg)
		return b.err
	})
}
