package views

import (
	"github.com/allinlistings/admin/internal/blog"
	"github.com/allinlistings/admin/internal/catalog"
	"github.com/allinlistings/admin/internal/service"
	"github.com/google/uuid"
)

// Shared form building blocks. Forms post through htmx and swap themselves,
// so validation errors re-render in place; the submit button disables while
// the request is in flight.

func formOpen(b *buf, action string) {
	b.f("<form hx-post=\"%s\" hx-target=\"this\" hx-swap=\"outerHTML\" hx-disabled-elt=\"find button[type='submit']\">", action)
}

func formClose(b *buf, submitLabel string) {
	b.f("<button type=\"submit\">%s</button></form>", esc(submitLabel))
}

func resultBanner(b *buf, res *service.UpsertResult) {
	if res == nil || res.Message == "" {
		return
	}
	cls := "flash error"
	if res.Success {
		cls = "flash ok"
	}
	b.f("<p class=\"%s\">%s</p>", cls, esc(res.Message))
}

func fieldError(b *buf, res *service.UpsertResult, field string) {
	if res == nil || !res.Errors.Has(field) {
		return
	}
	b.f("<p class=\"field-error\">%s</p>", esc(res.Errors.First(field)))
}

func hiddenID(b *buf, id string) {
	if id != "" {
		b.f("<input type=\"hidden\" name=\"id\" value=\"%s\">", esc(id))
	}
}

func textField(b *buf, res *service.UpsertResult, name, label, value string) {
	inputField(b, res, "text", name, label, value)
}

func inputField(b *buf, res *service.UpsertResult, typ, name, label, value string) {
	b.f("<label>%s<input type=\"%s\" name=\"%s\" value=\"%s\"></label>", esc(label), typ, name, esc(value))
	fieldError(b, res, name)
}

func textArea(b *buf, res *service.UpsertResult, name, label, value string, rich bool) {
	cls := ""
	if rich {
		cls = " class=\"rich-editor\""
	}
	b.f("<label>%s<textarea name=\"%s\" rows=\"8\"%s>%s</textarea></label>", esc(label), name, cls, esc(value))
	fieldError(b, res, name)
}

func checkboxField(b *buf, name, label string, checked bool) {
	check := ""
	if checked {
		check = " checked"
	}
	b.f("<label class=\"check\"><input type=\"checkbox\" name=\"%s\"%s> %s</label>", name, check, esc(label))
}

// refSelect renders a select over integer-keyed catalog options.
func refSelect(b *buf, res *service.UpsertResult, name, label string, options []catalog.Ref, selected int64, allowEmpty bool) {
	b.f("<label>%s<select name=\"%s\">", esc(label), name)
	if allowEmpty {
		b.s("<option value=\"\">-</option>")
	}
	for _, opt := range options {
		sel := ""
		if opt.ID == selected {
			sel = " selected"
		}
		b.f("<option value=\"%d\"%s>%s</option>", opt.ID, sel, esc(opt.Name))
	}
	b.s("</select></label>")
	fieldError(b, res, name)
}

// optionSelect renders a select over uuid-keyed blog options. With multiple
// set it becomes the tag multi-select; wrap gives it an id so the modal
// create flow can refresh it from the JSON endpoint.
func optionSelect(b *buf, res *service.UpsertResult, name, label, wrapID string, options []blog.Option, selected map[uuid.UUID]bool, multiple, allowEmpty bool) {
	multi := ""
	if multiple {
		multi = " multiple"
	}
	b.f("<label id=\"%s\">%s<select name=\"%s\"%s>", wrapID, esc(label), name, multi)
	if allowEmpty {
		b.s("<option value=\"\">-</option>")
	}
	for _, opt := range options {
		sel := ""
		if selected[opt.ID] {
			sel = " selected"
		}
		b.f("<option value=\"%s\"%s>%s</option>", opt.ID, sel, esc(opt.Name))
	}
	b.s("</select></label>")
	fieldError(b, res, name)
}
