package views

// ListState carries the filter, sort and pagination state of a listing page.
// Filtering, ordering and page slicing happen in the handler; the view only
// renders the controls.
type ListState struct {
	Query string
	Sort  string
	Dir   string
	Page  int
	Pages int
	Total int
}

func searchBox(b *buf, path string, st ListState) {
	b.f("<form class=\"search\" method=\"get\" action=\"%s\">", path)
	b.f("<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Filter…\">", esc(st.Query))
	b.s("<button type=\"submit\">Search</button></form>")
}

// sortHeader renders a clickable column header. Clicking the active column
// toggles the direction.
func sortHeader(b *buf, path string, st ListState, key, label string) {
	dir := "asc"
	marker := ""
	if st.Sort == key {
		if st.Dir == "asc" {
			dir = "desc"
			marker = " ▲"
		} else {
			marker = " ▼"
		}
	}
	b.f("<th><a href=\"%s?q=%s&sort=%s&dir=%s\">%s</a>%s</th>", path, esc(st.Query), key, dir, esc(label), marker)
}

func pager(b *buf, path string, st ListState) {
	if st.Pages <= 1 {
		return
	}
	b.f("<nav class=\"pager\"><span>%d result(s)</span>", st.Total)
	if st.Page > 1 {
		b.f("<a href=\"%s?q=%s&sort=%s&dir=%s&page=%d\">Previous</a>", path, esc(st.Query), st.Sort, st.Dir, st.Page-1)
	}
	b.f("<span>Page %d of %d</span>", st.Page, st.Pages)
	if st.Page < st.Pages {
		b.f("<a href=\"%s?q=%s&sort=%s&dir=%s&page=%d\">Next</a>", path, esc(st.Query), st.Sort, st.Dir, st.Page+1)
	}
	b.s("</nav>")
}

func rowActions(b *buf, editHref, siteHref, deletePost, confirmMsg string) {
	b.s("<td class=\"actions\">")
	b.f("<a href=\"%s\">Edit</a>", editHref)
	if siteHref != "" {
		b.f("<a href=\"%s\" target=\"_blank\" rel=\"noopener\">View</a>", esc(siteHref))
	}
	b.f("<button hx-post=\"%s\" hx-confirm=\"%s\" hx-target=\"closest tr\" hx-swap=\"outerHTML\">Delete</button>", deletePost, esc(confirmMsg))
	b.s("</td>")
}

func errorRow(b *buf, cols int, msg string) {
	b.f("<tr><td colspan=\"%d\" class=\"flash error\">%s</td></tr>", cols, esc(msg))
}
