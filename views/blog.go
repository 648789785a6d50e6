package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/allinlistings/admin/internal/blog"
	"github.com/allinlistings/admin/internal/service"
	"github.com/google/uuid"
)

func CategoryList(rows []blog.Category, st ListState) templ.Component {
	return taxonomyList("Categories", "/dashboard/blog/categories", rows2taxonomy(rows), st)
}

func TagList(rows []blog.Tag, st ListState) templ.Component {
	tax := make([]taxonomyRow, len(rows))
	for i, row := range rows {
		tax[i] = taxonomyRow{ID: row.ID, Name: row.Name, Slug: row.Slug}
	}
	return taxonomyList("Tags", "/dashboard/blog/tags", tax, st)
}

type taxonomyRow struct {
	ID   uuid.UUID
	Name string
	Slug string
}

func rows2taxonomy(rows []blog.Category) []taxonomyRow {
	tax := make([]taxonomyRow, len(rows))
	for i, row := range rows {
		tax[i] = taxonomyRow{ID: row.ID, Name: row.Name, Slug: row.Slug}
	}
	return tax
}

func taxonomyList(title, basePath string, rows []taxonomyRow, st ListState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		b.f("<div class=\"page-head\"><h1>%s</h1><a class=\"btn\" href=\"%s/new\">New</a></div>", esc(title), basePath)
		searchBox(b, basePath, st)
		b.s("<table><thead><tr>")
		sortHeader(b, basePath, st, "name", "Name")
		sortHeader(b, basePath, st, "slug", "Slug")
		b.s("<th></th></tr></thead><tbody>")
		for _, row := range rows {
			b.s("<tr>")
			b.f("<td>%s</td>", esc(row.Name))
			b.f("<td>%s</td>", esc(row.Slug))
			rowActions(b,
				basePath+"/"+row.ID.String()+"/edit",
				"",
				basePath+"/"+row.ID.String()+"/delete",
				"Delete \""+row.Name+"\"?")
			b.s("</tr>")
		}
		b.s("</tbody></table>")
		pager(b, basePath, st)
		return b.err
	})
}

// TaxonomyForm serves both categories and tags; compact is the modal variant
// embedded in the post form.
func TaxonomyForm(action string, id uuid.UUID, name, slug string, res *service.UpsertResult, compact bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		target := "this"
		if compact {
			action += "?fragment=modal"
		}
		b.f("<form hx-post=\"%s\" hx-target=\"%s\" hx-swap=\"outerHTML\" hx-disabled-elt=\"find button[type='submit']\">", action, target)
		resultBanner(b, res)
		if id != uuid.Nil {
			hiddenID(b, id.String())
		}
		textField(b, res, "name", "Name", name)
		textField(b, res, "slug", "Slug", slug)
		formClose(b, "Save")
		return b.err
	})
}

func PostList(rows []blog.PostRow, st ListState, siteBaseURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		b.s("<div class=\"page-head\"><h1>Blog posts</h1><a class=\"btn\" href=\"/dashboard/blog/posts/new\">New post</a></div>")
		searchBox(b, "/dashboard/blog/posts", st)
		b.s("<table><thead><tr>")
		sortHeader(b, "/dashboard/blog/posts", st, "title", "Title")
		sortHeader(b, "/dashboard/blog/posts", st, "category", "Category")
		sortHeader(b, "/dashboard/blog/posts", st, "status", "Status")
		sortHeader(b, "/dashboard/blog/posts", st, "comments", "Comments")
		sortHeader(b, "/dashboard/blog/posts", st, "published", "Published")
		b.s("<th></th></tr></thead><tbody>")
		for _, row := range rows {
			b.s("<tr>")
			b.f("<td>%s</td>", esc(row.Title))
			b.f("<td>%s</td>", esc(orDash(row.CategoryName)))
			b.f("<td>%s</td>", esc(string(row.Status)))
			b.f("<td>%d</td>", row.CommentCount)
			b.f("<td>%s</td>", fmtDatePtr(row.PublishedAt))
			rowActions(b,
				"/dashboard/blog/posts/"+row.ID.String()+"/edit",
				siteBaseURL+"/blog/"+row.Slug,
				"/dashboard/blog/posts/"+row.ID.String()+"/delete",
				"Delete post \""+row.Title+"\"?")
			b.s("</tr>")
		}
		b.s("</tbody></table>")
		pager(b, "/dashboard/blog/posts", st)
		return b.err
	})
}

// PostForm renders the main post form plus the modal category/tag create
// flows and the comments table for existing posts.
func PostForm(p *blog.Post, tagIDs []uuid.UUID, comments []blog.Comment, categories, tags []blog.Option, res *service.UpsertResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		formOpen(b, "/dashboard/blog/posts")
		resultBanner(b, res)
		if p.ID != uuid.Nil {
			hiddenID(b, p.ID.String())
		}
		textField(b, res, "title", "Title", p.Title)
		textField(b, res, "slug", "Slug", p.Slug)
		textArea(b, res, "content", "Content", p.Content, true)

		var selectedCat uuid.UUID
		if p.CategoryID != nil {
			selectedCat = *p.CategoryID
		}
		if err := CategorySelect(categories, selectedCat).Render(ctx, w); err != nil {
			return err
		}
		b.s("<button type=\"button\" hx-get=\"/dashboard/blog/posts/category-options\" hx-include=\"[name='category_id']\" hx-target=\"#category-select\" hx-swap=\"outerHTML\">Refresh categories</button>")

		selectedTags := make(map[uuid.UUID]bool, len(tagIDs))
		for _, id := range tagIDs {
			selectedTags[id] = true
		}
		if err := TagSelect(tags, selectedTags).Render(ctx, w); err != nil {
			return err
		}
		b.s("<button type=\"button\" hx-get=\"/dashboard/blog/posts/tag-options\" hx-include=\"[name='tags']\" hx-target=\"#tags-select\" hx-swap=\"outerHTML\">Refresh tags</button>")

		uploadWidget(b, res, "featured_image_url", "Featured image", deref(p.FeaturedImageURL))

		b.s("<label>Status<select name=\"status\">")
		for _, status := range []blog.PostStatus{blog.PostDraft, blog.PostPublished} {
			sel := ""
			if p.Status == status {
				sel = " selected"
			}
			b.f("<option value=\"%s\"%s>%s</option>", status, sel, status)
		}
		b.s("</select></label>")
		fieldError(b, res, "status")

		published := ""
		if p.PublishedAt != nil {
			published = fmtDate(*p.PublishedAt)
		}
		inputField(b, res, "date", "published_at", "Published at", published)
		formClose(b, "Save post")

		// Child-create flows live outside the main form: HTML forbids
		// nesting forms.
		b.s("<details class=\"modal\"><summary>New category</summary>")
		if b.err == nil {
			if err := TaxonomyForm("/dashboard/blog/categories", uuid.Nil, "", "", nil, true).Render(ctx, w); err != nil {
				return err
			}
		}
		b.s("</details>")
		b.s("<details class=\"modal\"><summary>New tag</summary>")
		if b.err == nil {
			if err := TaxonomyForm("/dashboard/blog/tags", uuid.Nil, "", "", nil, true).Render(ctx, w); err != nil {
				return err
			}
		}
		b.s("</details>")

		if p.ID != uuid.Nil {
			if err := CommentTable(comments).Render(ctx, w); err != nil {
				return err
			}
		}
		return b.err
	})
}

func CategorySelect(options []blog.Option, selected uuid.UUID) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		sel := map[uuid.UUID]bool{}
		if selected != uuid.Nil {
			sel[selected] = true
		}
		optionSelect(b, nil, "category_id", "Category", "category-select", options, sel, false, true)
		return b.err
	})
}

func TagSelect(options []blog.Option, selected map[uuid.UUID]bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		optionSelect(b, nil, "tags", "Tags", "tags-select", options, selected, true, false)
		return b.err
	})
}

func CommentTable(comments []blog.Comment) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &buf{w: w}
		b.s("<h2>Comments</h2>")
		if len(comments) == 0 {
			b.s("<p>No comments yet.</p>")
			return b.err
		}
		b.s("<table><thead><tr><th>Comment</th><th>Posted</th><th></th></tr></thead><tbody>")
		for _, comment := range comments {
			b.s("<tr>")
			b.f("<td>%s</td>", esc(comment.Content))
			b.f("<td>%s</td>", esc(ago(comment.CreatedAt)))
			b.f("<td class=\"actions\"><button hx-post=\"/dashboard/blog/comments/%s/delete\" hx-confirm=\"Delete this comment?\" hx-target=\"closest tr\" hx-swap=\"outerHTML\">Delete</button></td>", comment.ID)
			b.s("</tr>")
		}
		b.s("</tbody></table>")
		return b.err
	})
}
