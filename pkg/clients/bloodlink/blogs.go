package bloodlink

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// ListBlogsParams filter the blog list endpoint.
type ListBlogsParams struct {
	Page   int
	Limit  int
	Status model.BlogStatus
	Tag    string
	Search string
}

// Values encodes the params as query parameters.
func (p ListBlogsParams) Values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if p.Tag != "" {
		q.Set("tag", p.Tag)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// CreateBlogInput is the payload for creating a post. The slug is derived
// client-side from the title before submission.
type CreateBlogInput struct {
	Title    string           `json:"title" validate:"required"`
	Content  string           `json:"content" validate:"required"`
	Excerpt  string           `json:"excerpt,omitempty"`
	ImageURL string           `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Tags     []string         `json:"tags,omitempty"`
	Status   model.BlogStatus `json:"status" validate:"required,oneof=draft published archived"`
	Slug     string           `json:"slug" validate:"required"`
}

// UpdateBlogInput edits a post. The slug is not re-derived on title change.
type UpdateBlogInput struct {
	Title    *string           `json:"title,omitempty"`
	Content  *string           `json:"content,omitempty"`
	Excerpt  *string           `json:"excerpt,omitempty"`
	ImageURL *string           `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Tags     []string          `json:"tags,omitempty"`
	Status   *model.BlogStatus `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
}

// ListBlogs returns one page of posts.
func (c *Client) ListBlogs(ctx context.Context, params ListBlogsParams) (*model.Page[model.Blog], error) {
	page, err := get[model.Page[model.Blog]](ctx, c, "/blogs", params.Values())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBlog returns a single post by id.
func (c *Client) GetBlog(ctx context.Context, id string) (*model.Blog, error) {
	blog, err := get[model.Blog](ctx, c, "/blogs/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// CreateBlog creates a post.
func (c *Client) CreateBlog(ctx context.Context, input CreateBlogInput) (*model.Blog, error) {
	blog, err := post[model.Blog](ctx, c, "/blogs", input)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// UpdateBlog edits a post.
func (c *Client) UpdateBlog(ctx context.Context, id string, input UpdateBlogInput) (*model.Blog, error) {
	blog, err := put[model.Blog](ctx, c, "/blogs/"+id, input)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// DeleteBlog removes a post.
func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return del(ctx, c, "/blogs/"+id)
}
