package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/pkg/cache"
	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

type fakeBlogAPI struct {
	lastCreate  bloodlink.CreateBlogInput
	createCalls int
	listCalls   int
}

func (f *fakeBlogAPI) ListBlogs(_ context.Context, _ bloodlink.ListBlogsParams) (*model.Page[model.Blog], error) {
	f.listCalls++
	return &model.Page[model.Blog]{}, nil
}

func (f *fakeBlogAPI) GetBlog(_ context.Context, id string) (*model.Blog, error) {
	return &model.Blog{ID: id}, nil
}

func (f *fakeBlogAPI) CreateBlog(_ context.Context, input bloodlink.CreateBlogInput) (*model.Blog, error) {
	f.createCalls++
	f.lastCreate = input
	return &model.Blog{ID: "blog-1", Title: input.Title, Slug: input.Slug}, nil
}

func (f *fakeBlogAPI) UpdateBlog(_ context.Context, id string, _ bloodlink.UpdateBlogInput) (*model.Blog, error) {
	return &model.Blog{ID: id}, nil
}

func (f *fakeBlogAPI) DeleteBlog(_ context.Context, _ string) error {
	return nil
}

func TestCreateBlogDerivesSlugFromTitle(t *testing.T) {
	api := &fakeBlogAPI{}

	_, err := CreateBlog(context.Background(), api, cache.New(), zap.NewNop(), BlogDraft{
		Title:   "Why Donate Blood? 10 Reasons!",
		Content: "body",
		Status:  model.BlogPublished,
	})

	require.NoError(t, err)
	assert.Equal(t, "why-donate-blood-10-reasons", api.lastCreate.Slug)
}

func TestCreateBlogInvalidatesWarmCache(t *testing.T) {
	api := &fakeBlogAPI{}
	store := cache.New()
	params := bloodlink.ListBlogsParams{Page: 1}

	_, err := ListBlogs(context.Background(), api, store, zap.NewNop(), params)
	require.NoError(t, err)
	require.Equal(t, 1, api.listCalls)

	_, err = CreateBlog(context.Background(), api, store, zap.NewNop(), BlogDraft{
		Title:   "Donor Stories",
		Content: "body",
		Status:  model.BlogDraft,
	})
	require.NoError(t, err)

	_, err = ListBlogs(context.Background(), api, store, zap.NewNop(), params)
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestCreateBlogRejectsUnknownStatus(t *testing.T) {
	api := &fakeBlogAPI{}

	_, err := CreateBlog(context.Background(), api, cache.New(), zap.NewNop(), BlogDraft{
		Title:   "Untitled",
		Content: "body",
		Status:  model.BlogStatus("pending"),
	})

	require.Error(t, err)
	assert.Zero(t, api.createCalls)
}
