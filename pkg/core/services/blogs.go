package services

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/pkg/cache"
	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/derive"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// BlogAPI is the slice of the API client the blog services need.
type BlogAPI interface {
	ListBlogs(ctx context.Context, params bloodlink.ListBlogsParams) (*model.Page[model.Blog], error)
	GetBlog(ctx context.Context, id string) (*model.Blog, error)
	CreateBlog(ctx context.Context, input bloodlink.CreateBlogInput) (*model.Blog, error)
	UpdateBlog(ctx context.Context, id string, input bloodlink.UpdateBlogInput) (*model.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
}

// BlogDraft is the create-form payload. The slug is derived from the title
// at submission time and never edited afterwards.
type BlogDraft struct {
	Title    string           `validate:"required"`
	Content  string           `validate:"required"`
	Excerpt  string           `validate:"omitempty"`
	ImageURL string           `validate:"omitempty,url"`
	Tags     []string         `validate:"omitempty"`
	Status   model.BlogStatus `validate:"required,oneof=draft published archived"`
}

// ListBlogs returns one page of posts through the cache.
func ListBlogs(ctx context.Context, api BlogAPI, store *cache.Cache, logger *zap.Logger, params bloodlink.ListBlogsParams) (*model.Page[model.Blog], error) {
	key := cache.Key(blogsResource, "list", params.Values())
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.Page[model.Blog], error) {
		logger.Debug("fetching blogs", zap.Int("page", params.Page))
		return api.ListBlogs(ctx, params)
	})
}

// GetBlog returns a single post through the cache.
func GetBlog(ctx context.Context, api BlogAPI, store *cache.Cache, logger *zap.Logger, id string) (*model.Blog, error) {
	key := cache.Key(blogsResource, "item", url.Values{"id": {id}})
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.Blog, error) {
		return api.GetBlog(ctx, id)
	})
}

// CreateBlog derives the slug from the title, creates the post, and
// invalidates the blog cache.
func CreateBlog(ctx context.Context, api BlogAPI, store *cache.Cache, logger *zap.Logger, draft BlogDraft) (*model.Blog, error) {
	if err := validateInput(draft); err != nil {
		return nil, err
	}

	input := bloodlink.CreateBlogInput{
		Title:    draft.Title,
		Content:  draft.Content,
		Excerpt:  draft.Excerpt,
		ImageURL: draft.ImageURL,
		Tags:     draft.Tags,
		Status:   draft.Status,
		Slug:     derive.Slugify(draft.Title),
	}

	blog, err := api.CreateBlog(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.Info("blog created", zap.String("id", blog.ID), zap.String("slug", blog.Slug))
	store.Invalidate(blogsResource)
	return blog, nil
}

// UpdateBlog edits a post and invalidates the blog cache.
func UpdateBlog(ctx context.Context, api BlogAPI, store *cache.Cache, logger *zap.Logger, id string, input bloodlink.UpdateBlogInput) (*model.Blog, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	blog, err := api.UpdateBlog(ctx, id, input)
	if err != nil {
		return nil, err
	}

	logger.Info("blog updated", zap.String("id", id))
	store.Invalidate(blogsResource)
	return blog, nil
}

// DeleteBlog removes a post and invalidates the blog cache.
func DeleteBlog(ctx context.Context, api BlogAPI, store *cache.Cache, logger *zap.Logger, id string) error {
	if err := api.DeleteBlog(ctx, id); err != nil {
		return err
	}

	logger.Info("blog deleted", zap.String("id", id))
	store.Invalidate(blogsResource)
	return nil
}
