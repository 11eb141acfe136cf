package bloodlink

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
	"github.com/bloodlink/bloodlink-admin/pkg/core/workflow"
)

// ListDonationsParams filter the donation request list endpoint.
type ListDonationsParams struct {
	Page       int
	Limit      int
	Status     workflow.DonationStatus
	CampaignID string
	Search     string
}

// Values encodes the params as query parameters.
func (p ListDonationsParams) Values() url.Values {
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
	if p.CampaignID != "" {
		q.Set("campaignId", p.CampaignID)
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// UpdateDonationStatusInput moves a donation request to a new workflow state.
type UpdateDonationStatusInput struct {
	Status workflow.DonationStatus `json:"status" validate:"required"`
	Note   string                  `json:"note,omitempty"`
}

// CreateDonationResultInput attaches blood test results to a completed
// donation request.
type CreateDonationResultInput struct {
	TemplateID string            `json:"templateId" validate:"required"`
	ResultData map[string]string `json:"resultData" validate:"required"`
	Notes      string            `json:"notes,omitempty"`
}

// ListDonations returns one page of donation requests.
func (c *Client) ListDonations(ctx context.Context, params ListDonationsParams) (*model.Page[model.DonationRequest], error) {
	page, err := get[model.Page[model.DonationRequest]](ctx, c, "/donation-requests", params.Values())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetDonation returns a single donation request by id.
func (c *Client) GetDonation(ctx context.Context, id string) (*model.DonationRequest, error) {
	donation, err := get[model.DonationRequest](ctx, c, "/donation-requests/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// UpdateDonationStatus requests a status transition. The server remains the
// authority on legality; callers should consult the workflow package first
// so they only offer transitions the dashboard supports.
func (c *Client) UpdateDonationStatus(ctx context.Context, id string, input UpdateDonationStatusInput) (*model.DonationRequest, error) {
	donation, err := patch[model.DonationRequest](ctx, c, "/donation-requests/"+id+"/status", input)
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// GetDonationResult fetches the result record attached to a donation
// request, if any.
func (c *Client) GetDonationResult(ctx context.Context, donationID string) (*model.DonationResult, error) {
	result, err := get[model.DonationResult](ctx, c, "/donation-requests/"+donationID+"/result", nil)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateDonationResult attaches test results to a donation request.
func (c *Client) CreateDonationResult(ctx context.Context, donationID string, input CreateDonationResultInput) (*model.DonationResult, error) {
	result, err := post[model.DonationResult](ctx, c, "/donation-requests/"+donationID+"/result", input)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
