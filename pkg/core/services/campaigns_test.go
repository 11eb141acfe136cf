package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/pkg/cache"
	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

type fakeCampaignAPI struct {
	listCalls   int
	lastCreate  bloodlink.CreateCampaignInput
	createCalls int
	page        *model.Page[model.Campaign]
}

func (f *fakeCampaignAPI) ListCampaigns(_ context.Context, _ bloodlink.ListCampaignsParams) (*model.Page[model.Campaign], error) {
	f.listCalls++
	return f.page, nil
}

func (f *fakeCampaignAPI) GetCampaign(_ context.Context, id string) (*model.Campaign, error) {
	return &model.Campaign{ID: id}, nil
}

func (f *fakeCampaignAPI) CreateCampaign(_ context.Context, input bloodlink.CreateCampaignInput) (*model.Campaign, error) {
	f.createCalls++
	f.lastCreate = input
	return &model.Campaign{ID: "camp-1", Name: input.Name, Status: input.Status}, nil
}

func (f *fakeCampaignAPI) UpdateCampaign(_ context.Context, id string, _ bloodlink.UpdateCampaignInput) (*model.Campaign, error) {
	return &model.Campaign{ID: id}, nil
}

func (f *fakeCampaignAPI) DeleteCampaign(_ context.Context, _ string) error {
	return nil
}

func validDraft(start time.Time) CampaignDraft {
	return CampaignDraft{
		Name:        "Summer Drive",
		Description: "Annual summer donation drive",
		StartDate:   start,
		Location:    "City Hall",
	}
}

func TestCreateCampaignDerivesStatusFromDates(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	api := &fakeCampaignAPI{}
	store := cache.New()
	logger := zap.NewNop()

	_, err := CreateCampaign(context.Background(), api, store, logger, validDraft(now.Add(48*time.Hour)), now)
	require.NoError(t, err)
	assert.Equal(t, model.CampaignNotStarted, api.lastCreate.Status)

	_, err = CreateCampaign(context.Background(), api, store, logger, validDraft(now.Add(-48*time.Hour)), now)
	require.NoError(t, err)
	assert.Equal(t, model.CampaignActive, api.lastCreate.Status)

	ended := validDraft(now.Add(-96 * time.Hour))
	end := now.Add(-24 * time.Hour)
	ended.EndDate = &end
	_, err = CreateCampaign(context.Background(), api, store, logger, ended, now)
	require.NoError(t, err)
	assert.Equal(t, model.CampaignEnded, api.lastCreate.Status)
}

func TestCreateCampaignRejectsInvalidDraftBeforeAPICall(t *testing.T) {
	api := &fakeCampaignAPI{}
	draft := validDraft(time.Now())
	draft.Location = ""

	_, err := CreateCampaign(context.Background(), api, cache.New(), zap.NewNop(), draft, time.Now())

	require.Error(t, err)
	assert.Zero(t, api.createCalls)
}

func TestListCampaignsUsesCache(t *testing.T) {
	api := &fakeCampaignAPI{page: &model.Page[model.Campaign]{
		Data: []model.Campaign{{ID: "camp-1"}},
		Meta: model.Meta{Page: 1, Total: 1},
	}}
	store := cache.New()
	params := bloodlink.ListCampaignsParams{Page: 1}

	first, err := ListCampaigns(context.Background(), api, store, zap.NewNop(), params)
	require.NoError(t, err)
	second, err := ListCampaigns(context.Background(), api, store, zap.NewNop(), params)
	require.NoError(t, err)

	assert.Equal(t, 1, api.listCalls)
	assert.Equal(t, first, second)
}

func TestCreateCampaignInvalidatesWarmCache(t *testing.T) {
	api := &fakeCampaignAPI{page: &model.Page[model.Campaign]{}}
	store := cache.New()
	params := bloodlink.ListCampaignsParams{Page: 1}

	_, err := ListCampaigns(context.Background(), api, store, zap.NewNop(), params)
	require.NoError(t, err)
	require.Equal(t, 1, api.listCalls)

	_, err = CreateCampaign(context.Background(), api, store, zap.NewNop(), validDraft(time.Now()), time.Now())
	require.NoError(t, err)

	_, err = ListCampaigns(context.Background(), api, store, zap.NewNop(), params)
	require.NoError(t, err)
	assert.Equal(t, 2, api.listCalls)
}
