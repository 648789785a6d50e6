package main

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/allinlistings/admin/internal/blog"
	"github.com/allinlistings/admin/internal/config"
	"github.com/allinlistings/admin/internal/httputil"
	"github.com/allinlistings/admin/internal/service"
	"github.com/allinlistings/admin/views"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func registerBlogRoutes(r chi.Router, cfg config.Config, posts *service.BlogService) {
	// Categories

	r.Get(service.PathBlogCategories, func(w http.ResponseWriter, r *http.Request) {
		rows, err := posts.ListCategories(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch categories", err)
			return
		}
		page, st := paginate(rows, r, func(c blog.Category, q string) bool {
			return containsFold(c.Name, q) || containsFold(c.Slug, q)
		}, map[string]func(a, b blog.Category) bool{
			"name": func(a, b blog.Category) bool { return a.Name < b.Name },
			"slug": func(a, b blog.Category) bool { return a.Slug < b.Slug },
		})
		views.Render(w, r, views.Layout("Categories", service.PathBlogCategories, views.CategoryList(page, st)))
	})

	r.Get(service.PathBlogCategories+"/new", func(w http.ResponseWriter, r *http.Request) {
		form := views.TaxonomyForm(service.PathBlogCategories, uuid.Nil, "", "", nil, false)
		views.Render(w, r, views.Layout("New category", service.PathBlogCategories, form))
	})

	r.Get(service.PathBlogCategories+"/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.BadRequest(w, "Invalid category ID", err)
			return
		}
		category, err := posts.GetCategory(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Category not found", err)
				return
			}
			httputil.InternalServerError(w, "Failed to fetch category", err)
			return
		}
		form := views.TaxonomyForm(service.PathBlogCategories, category.ID, category.Name, category.Slug, nil, false)
		views.Render(w, r, views.Layout("Edit category", service.PathBlogCategories, form))
	})

	r.Post(service.PathBlogCategories, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}
		modal := r.URL.Query().Get("fragment") == "modal"
		res := posts.UpsertCategory(r.Context(), r.PostForm)
		if res.Success && !modal {
			w.Header().Set("HX-Redirect", service.PathBlogCategories)
			w.WriteHeader(http.StatusOK)
			return
		}
		if res.Success {
			// Modal stays open so another category can be added; the
			// refresh button picks up the new option.
			views.Render(w, r, views.TaxonomyForm(service.PathBlogCategories, uuid.Nil, "", "", &res, true))
			return
		}
		category, _ := blog.ParseCategoryForm(r.PostForm)
		views.Render(w, r, views.TaxonomyForm(service.PathBlogCategories, category.ID, category.Name, category.Slug, &res, modal))
	})

	r.Post(service.PathBlogCategories+"/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		res := posts.DeleteCategory(r.Context(), chi.URLParam(r, "id"))
		if res.Success {
			w.WriteHeader(http.StatusOK)
			return
		}
		views.Render(w, r, views.ErrorRow(3, res.Message))
	})

	// Tags

	r.Get(service.PathBlogTags, func(w http.ResponseWriter, r *http.Request) {
		rows, err := posts.ListTags(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch tags", err)
			return
		}
		page, st := paginate(rows, r, func(t blog.Tag, q string) bool {
			return containsFold(t.Name, q) || containsFold(t.Slug, q)
		}, map[string]func(a, b blog.Tag) bool{
			"name": func(a, b blog.Tag) bool { return a.Name < b.Name },
			"slug": func(a, b blog.Tag) bool { return a.Slug < b.Slug },
		})
		views.Render(w, r, views.Layout("Tags", service.PathBlogTags, views.TagList(page, st)))
	})

	r.Get(service.PathBlogTags+"/new", func(w http.ResponseWriter, r *http.Request) {
		form := views.TaxonomyForm(service.PathBlogTags, uuid.Nil, "", "", nil, false)
		views.Render(w, r, views.Layout("New tag", service.PathBlogTags, form))
	})

	r.Get(service.PathBlogTags+"/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.BadRequest(w, "Invalid tag ID", err)
			return
		}
		tag, err := posts.GetTag(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Tag not found", err)
				return
			}
			httputil.InternalServerError(w, "Failed to fetch tag", err)
			return
		}
		form := views.TaxonomyForm(service.PathBlogTags, tag.ID, tag.Name, tag.Slug, nil, false)
		views.Render(w, r, views.Layout("Edit tag", service.PathBlogTags, form))
	})

	r.Post(service.PathBlogTags, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}
		modal := r.URL.Query().Get("fragment") == "modal"
		res := posts.UpsertTag(r.Context(), r.PostForm)
		if res.Success && !modal {
			w.Header().Set("HX-Redirect", service.PathBlogTags)
			w.WriteHeader(http.StatusOK)
			return
		}
		if res.Success {
			views.Render(w, r, views.TaxonomyForm(service.PathBlogTags, uuid.Nil, "", "", &res, true))
			return
		}
		tag, _ := blog.ParseTagForm(r.PostForm)
		views.Render(w, r, views.TaxonomyForm(service.PathBlogTags, tag.ID, tag.Name, tag.Slug, &res, modal))
	})

	r.Post(service.PathBlogTags+"/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		res := posts.DeleteTag(r.Context(), chi.URLParam(r, "id"))
		if res.Success {
			w.WriteHeader(http.StatusOK)
			return
		}
		views.Render(w, r, views.ErrorRow(3, res.Message))
	})

	// Posts

	postFormOptions := func(w http.ResponseWriter, r *http.Request) ([]blog.Option, []blog.Option, bool) {
		categories, err := posts.CategoryOptions(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch categories", err)
			return nil, nil, false
		}
		tags, err := posts.TagOptions(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch tags", err)
			return nil, nil, false
		}
		return categories, tags, true
	}

	r.Get(service.PathBlogPosts, func(w http.ResponseWriter, r *http.Request) {
		rows, err := posts.ListPosts(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch posts", err)
			return
		}
		page, st := paginate(rows, r, func(p blog.PostRow, q string) bool {
			return containsFold(p.Title, q) || containsFold(p.Slug, q)
		}, map[string]func(a, b blog.PostRow) bool{
			"title":  func(a, b blog.PostRow) bool { return a.Title < b.Title },
			"status": func(a, b blog.PostRow) bool { return a.Status < b.Status },
			"category": func(a, b blog.PostRow) bool {
				av, bv := "", ""
				if a.CategoryName != nil {
					av = *a.CategoryName
				}
				if b.CategoryName != nil {
					bv = *b.CategoryName
				}
				return av < bv
			},
			"comments": func(a, b blog.PostRow) bool { return a.CommentCount < b.CommentCount },
			"published": func(a, b blog.PostRow) bool {
				var at, bt time.Time
				if a.PublishedAt != nil {
					at = *a.PublishedAt
				}
				if b.PublishedAt != nil {
					bt = *b.PublishedAt
				}
				return at.Before(bt)
			},
		})
		views.Render(w, r, views.Layout("Blog posts", service.PathBlogPosts, views.PostList(page, st, cfg.SiteBaseURL)))
	})

	r.Get(service.PathBlogPosts+"/new", func(w http.ResponseWriter, r *http.Request) {
		categories, tags, ok := postFormOptions(w, r)
		if !ok {
			return
		}
		form := views.PostForm(&blog.Post{Status: blog.PostDraft}, nil, nil, categories, tags, nil)
		views.Render(w, r, views.Layout("New post", service.PathBlogPosts, form))
	})

	r.Get(service.PathBlogPosts+"/{id}/edit", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			httputil.BadRequest(w, "Invalid post ID", err)
			return
		}
		detail, err := posts.GetPostDetail(r.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				httputil.NotFound(w, "Post not found", err)
				return
			}
			httputil.InternalServerError(w, "Failed to fetch post", err)
			return
		}
		categories, tags, ok := postFormOptions(w, r)
		if !ok {
			return
		}
		form := views.PostForm(&detail.Post, detail.TagIDs, detail.Comments, categories, tags, nil)
		views.Render(w, r, views.Layout("Edit post", service.PathBlogPosts, form))
	})

	r.Post(service.PathBlogPosts, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}
		res := posts.UpsertPost(r.Context(), r.PostForm)
		if res.Success {
			w.Header().Set("HX-Redirect", service.PathBlogPosts)
			w.WriteHeader(http.StatusOK)
			return
		}
		input, _ := blog.ParsePostForm(r.PostForm)
		categories, tags, ok := postFormOptions(w, r)
		if !ok {
			return
		}
		var comments []blog.Comment
		if input.ID != uuid.Nil {
			if detail, err := posts.GetPostDetail(r.Context(), input.ID); err == nil {
				comments = detail.Comments
			}
		}
		views.Render(w, r, views.PostForm(&input.Post, input.TagIDs, comments, categories, tags, &res))
	})

	r.Post(service.PathBlogPosts+"/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		res := posts.DeletePost(r.Context(), chi.URLParam(r, "id"))
		if res.Success {
			w.WriteHeader(http.StatusOK)
			return
		}
		views.Render(w, r, views.ErrorRow(6, res.Message))
	})

	// Select fragments for the refresh buttons on the post form. The current
	// selection rides along via hx-include so it survives the swap.

	r.Get(service.PathBlogPosts+"/category-options", func(w http.ResponseWriter, r *http.Request) {
		categories, err := posts.CategoryOptions(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch categories", err)
			return
		}
		selected, _ := uuid.Parse(r.URL.Query().Get("category_id"))
		views.Render(w, r, views.CategorySelect(categories, selected))
	})

	r.Get(service.PathBlogPosts+"/tag-options", func(w http.ResponseWriter, r *http.Request) {
		tags, err := posts.TagOptions(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to fetch tags", err)
			return
		}
		selected := make(map[uuid.UUID]bool)
		for _, raw := range r.URL.Query()["tags"] {
			if id, err := uuid.Parse(raw); err == nil {
				selected[id] = true
			}
		}
		views.Render(w, r, views.TagSelect(tags, selected))
	})

	// Comments

	r.Post("/dashboard/blog/comments/{id}/delete", func(w http.ResponseWriter, r *http.Request) {
		res := posts.DeleteComment(r.Context(), chi.URLParam(r, "id"))
		if res.Success {
			w.WriteHeader(http.StatusOK)
			return
		}
		views.Render(w, r, views.ErrorRow(3, res.Message))
	})
}
