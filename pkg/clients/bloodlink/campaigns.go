package bloodlink

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// ListCampaignsParams are the server-driven filter and pagination inputs of
// the campaign list endpoint.
type ListCampaignsParams struct {
	Page   int
	Limit  int
	Status model.CampaignStatus
	Search string
}

// Values encodes the params as query parameters. Zero values are omitted so
// the server applies its defaults.
func (p ListCampaignsParams) Values() url.Values {
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
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// CreateCampaignInput is the payload for creating a campaign. Status is
// derived client-side from the dates before submission.
type CreateCampaignInput struct {
	Name                string               `json:"name" validate:"required"`
	Description         string               `json:"description" validate:"required"`
	Status              model.CampaignStatus `json:"status" validate:"required"`
	StartDate           time.Time            `json:"startDate" validate:"required"`
	EndDate             *time.Time           `json:"endDate,omitempty"`
	BloodCollectionDate *time.Time           `json:"bloodCollectionDate,omitempty"`
	Banner              string               `json:"banner,omitempty" validate:"omitempty,url"`
	Location            string               `json:"location" validate:"required"`
	LimitDonation       int                  `json:"limitDonation" validate:"min=0"`
}

// UpdateCampaignInput is the payload for editing a campaign. Nil fields are
// left unchanged by the server.
type UpdateCampaignInput struct {
	Name                *string               `json:"name,omitempty"`
	Description         *string               `json:"description,omitempty"`
	Status              *model.CampaignStatus `json:"status,omitempty"`
	StartDate           *time.Time            `json:"startDate,omitempty"`
	EndDate             *time.Time            `json:"endDate,omitempty"`
	BloodCollectionDate *time.Time            `json:"bloodCollectionDate,omitempty"`
	Banner              *string               `json:"banner,omitempty" validate:"omitempty,url"`
	Location            *string               `json:"location,omitempty"`
	LimitDonation       *int                  `json:"limitDonation,omitempty" validate:"omitempty,min=0"`
}

// ListCampaigns returns one page of campaigns.
func (c *Client) ListCampaigns(ctx context.Context, params ListCampaignsParams) (*model.Page[model.Campaign], error) {
	page, err := get[model.Page[model.Campaign]](ctx, c, "/campaigns", params.Values())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCampaign returns a single campaign by id.
func (c *Client) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	campaign, err := get[model.Campaign](ctx, c, "/campaigns/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// CreateCampaign creates a campaign and returns the server's record.
func (c *Client) CreateCampaign(ctx context.Context, input CreateCampaignInput) (*model.Campaign, error) {
	campaign, err := post[model.Campaign](ctx, c, "/campaigns", input)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// UpdateCampaign edits a campaign and returns the updated record.
func (c *Client) UpdateCampaign(ctx context.Context, id string, input UpdateCampaignInput) (*model.Campaign, error) {
	campaign, err := put[model.Campaign](ctx, c, "/campaigns/"+id, input)
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// DeleteCampaign soft-deletes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	return del(ctx, c, "/campaigns/"+id)
}
