package services

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/pkg/cache"
	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/derive"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// CampaignAPI is the slice of the API client the campaign services need.
type CampaignAPI interface {
	ListCampaigns(ctx context.Context, params bloodlink.ListCampaignsParams) (*model.Page[model.Campaign], error)
	GetCampaign(ctx context.Context, id string) (*model.Campaign, error)
	CreateCampaign(ctx context.Context, input bloodlink.CreateCampaignInput) (*model.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, input bloodlink.UpdateCampaignInput) (*model.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
}

// CampaignDraft is the create-form payload. The status is not part of the
// form; it is derived from the dates at submission time.
type CampaignDraft struct {
	Name                string     `validate:"required"`
	Description         string     `validate:"required"`
	StartDate           time.Time  `validate:"required"`
	EndDate             *time.Time `validate:"omitempty"`
	BloodCollectionDate *time.Time `validate:"omitempty"`
	Banner              string     `validate:"omitempty,url"`
	Location            string     `validate:"required"`
	LimitDonation       int        `validate:"min=0"`
}

// ListCampaigns returns one page of campaigns through the cache.
func ListCampaigns(ctx context.Context, api CampaignAPI, store *cache.Cache, logger *zap.Logger, params bloodlink.ListCampaignsParams) (*model.Page[model.Campaign], error) {
	key := cache.Key(campaignsResource, "list", params.Values())
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.Page[model.Campaign], error) {
		logger.Debug("fetching campaigns", zap.Int("page", params.Page), zap.Int("limit", params.Limit))
		return api.ListCampaigns(ctx, params)
	})
}

// GetCampaign returns a single campaign through the cache.
func GetCampaign(ctx context.Context, api CampaignAPI, store *cache.Cache, logger *zap.Logger, id string) (*model.Campaign, error) {
	key := cache.Key(campaignsResource, "item", url.Values{"id": {id}})
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.Campaign, error) {
		logger.Debug("fetching campaign", zap.String("id", id))
		return api.GetCampaign(ctx, id)
	})
}

// CreateCampaign derives the initial status from the draft's dates, creates
// the campaign, and invalidates the campaign and dashboard caches.
func CreateCampaign(ctx context.Context, api CampaignAPI, store *cache.Cache, logger *zap.Logger, draft CampaignDraft, now time.Time) (*model.Campaign, error) {
	if err := validateInput(draft); err != nil {
		return nil, err
	}

	input := bloodlink.CreateCampaignInput{
		Name:                draft.Name,
		Description:         draft.Description,
		Status:              derive.CampaignStatusAt(draft.StartDate, draft.EndDate, now),
		StartDate:           draft.StartDate,
		EndDate:             draft.EndDate,
		BloodCollectionDate: draft.BloodCollectionDate,
		Banner:              draft.Banner,
		Location:            draft.Location,
		LimitDonation:       draft.LimitDonation,
	}

	campaign, err := api.CreateCampaign(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.Info("campaign created",
		zap.String("id", campaign.ID),
		zap.String("status", string(campaign.Status)))
	store.Invalidate(campaignsResource, dashboardResource)
	return campaign, nil
}

// UpdateCampaign edits a campaign and invalidates its cache entries.
func UpdateCampaign(ctx context.Context, api CampaignAPI, store *cache.Cache, logger *zap.Logger, id string, input bloodlink.UpdateCampaignInput) (*model.Campaign, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	campaign, err := api.UpdateCampaign(ctx, id, input)
	if err != nil {
		return nil, err
	}

	logger.Info("campaign updated", zap.String("id", id))
	store.Invalidate(campaignsResource, dashboardResource)
	return campaign, nil
}

// DeleteCampaign soft-deletes a campaign and invalidates its cache entries.
func DeleteCampaign(ctx context.Context, api CampaignAPI, store *cache.Cache, logger *zap.Logger, id string) error {
	if err := api.DeleteCampaign(ctx, id); err != nil {
		return err
	}

	logger.Info("campaign deleted", zap.String("id", id))
	store.Invalidate(campaignsResource, dashboardResource)
	return nil
}
