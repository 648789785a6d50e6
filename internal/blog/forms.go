package blog

import (
	"net/url"

	"github.com/allinlistings/admin/internal/form"
	"github.com/google/uuid"
)

// PostInput is a validated post submission. TagIDs is the full desired tag
// set; the store reconciles the relation table against it.
type PostInput struct {
	Post
	TagIDs []uuid.UUID
}

func ParsePostForm(values url.Values) (*PostInput, form.Errors) {
	f := form.New(values)
	p := &PostInput{
		Post: Post{
			Title:            f.Required("title", 3),
			Slug:             f.Slug("slug"),
			Content:          f.Required("content", 1),
			FeaturedImageURL: f.OptionalURL("featured_image_url"),
			Status:           PostStatus(f.Enum("status", string(PostDraft), string(PostPublished))),
			PublishedAt:      f.OptionalDate("published_at"),
		},
		TagIDs: f.UUIDList("tags"),
	}
	if id := f.OptionalUUID("id"); id != nil {
		p.ID = *id
	}
	if cat := f.OptionalUUID("category_id"); cat != nil {
		p.CategoryID = cat
	}
	if !f.Valid() {
		return p, f.Errors
	}
	return p, nil
}

// ParseCategoryForm and ParseTagForm share the name/slug shape.
func ParseCategoryForm(values url.Values) (*Category, form.Errors) {
	id, name, slug, errs := parseTaxonomy(values)
	c := &Category{Name: name, Slug: slug}
	if id != nil {
		c.ID = *id
	}
	return c, errs
}

func ParseTagForm(values url.Values) (*Tag, form.Errors) {
	id, name, slug, errs := parseTaxonomy(values)
	t := &Tag{Name: name, Slug: slug}
	if id != nil {
		t.ID = *id
	}
	return t, errs
}

func parseTaxonomy(values url.Values) (*uuid.UUID, string, string, form.Errors) {
	f := form.New(values)
	name := f.Required("name", 2)
	slug := f.Slug("slug")
	id := f.OptionalUUID("id")
	if !f.Valid() {
		return id, name, slug, f.Errors
	}
	return id, name, slug, nil
}
