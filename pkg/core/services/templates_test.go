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

type fakeTemplateAPI struct {
	template    model.DonationResultTemplate
	listCalls   int
	createCalls int
	lastSave    bloodlink.SaveTemplateInput
}

func (f *fakeTemplateAPI) ListTemplates(_ context.Context, _ bloodlink.ListTemplatesParams) (*model.Page[model.DonationResultTemplate], error) {
	f.listCalls++
	return &model.Page[model.DonationResultTemplate]{}, nil
}

func (f *fakeTemplateAPI) GetTemplate(_ context.Context, id string) (*model.DonationResultTemplate, error) {
	tpl := f.template
	tpl.ID = id
	return &tpl, nil
}

func (f *fakeTemplateAPI) CreateTemplate(_ context.Context, input bloodlink.SaveTemplateInput) (*model.DonationResultTemplate, error) {
	f.createCalls++
	f.lastSave = input
	return &model.DonationResultTemplate{ID: "tpl-1", Name: input.Name, Version: 1, Items: input.Items}, nil
}

func (f *fakeTemplateAPI) UpdateTemplate(_ context.Context, id string, input bloodlink.SaveTemplateInput) (*model.DonationResultTemplate, error) {
	f.lastSave = input
	return &model.DonationResultTemplate{ID: id, Name: input.Name, Version: 2, Items: input.Items}, nil
}

func (f *fakeTemplateAPI) ActivateTemplate(_ context.Context, id string) (*model.DonationResultTemplate, error) {
	return &model.DonationResultTemplate{ID: id, Active: true}, nil
}

func (f *fakeTemplateAPI) DeleteTemplate(_ context.Context, _ string) error {
	return nil
}

func standardPanelInput() bloodlink.SaveTemplateInput {
	return bloodlink.SaveTemplateInput{
		Name: "Standard panel",
		Items: []model.TemplateItem{
			{Key: "hemoglobin", Label: "Hemoglobin", Type: model.ItemNumber, Required: true},
		},
	}
}

func TestListTemplatesUsesCache(t *testing.T) {
	api := &fakeTemplateAPI{}
	store := cache.New()
	params := bloodlink.ListTemplatesParams{Page: 1}

	_, err := ListTemplates(context.Background(), api, store, zap.NewNop(), params)
	require.NoError(t, err)
	_, err = ListTemplates(context.Background(), api, store, zap.NewNop(), params)
	require.NoError(t, err)

	assert.Equal(t, 1, api.listCalls)
}

func TestCreateTemplateInvalidatesWarmCache(t *testing.T) {
	api := &fakeTemplateAPI{}
	store := cache.New()
	params := bloodlink.ListTemplatesParams{Page: 1}

	_, err := ListTemplates(context.Background(), api, store, zap.NewNop(), params)
	require.NoError(t, err)
	require.Equal(t, 1, api.listCalls)

	_, err = CreateTemplate(context.Background(), api, store, zap.NewNop(), standardPanelInput())
	require.NoError(t, err)

	_, err = ListTemplates(context.Background(), api, store, zap.NewNop(), params)
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestActivateTemplateInvalidatesWarmCache(t *testing.T) {
	api := &fakeTemplateAPI{}
	store := cache.New()
	params := bloodlink.ListTemplatesParams{Page: 1}

	_, err := ListTemplates(context.Background(), api, store, zap.NewNop(), params)
	require.NoError(t, err)
	require.Equal(t, 1, api.listCalls)

	tpl, err := ActivateTemplate(context.Background(), api, store, zap.NewNop(), "tpl-1")
	require.NoError(t, err)
	assert.True(t, tpl.Active)

	_, err = ListTemplates(context.Background(), api, store, zap.NewNop(), params)
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}

func TestCreateTemplateRequiresItems(t *testing.T) {
	api := &fakeTemplateAPI{}

	_, err := CreateTemplate(context.Background(), api, cache.New(), zap.NewNop(), bloodlink.SaveTemplateInput{
		Name: "Empty panel",
	})

	require.Error(t, err)
	assert.Zero(t, api.createCalls)
}
