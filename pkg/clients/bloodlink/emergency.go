package bloodlink

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
	"github.com/bloodlink/bloodlink-admin/pkg/core/workflow"
)

// ListEmergencyParams filter the emergency request list endpoint.
type ListEmergencyParams struct {
	Page   int
	Limit  int
	Status workflow.EmergencyStatus
	Search string
}

// Values encodes the params as query parameters.
func (p ListEmergencyParams) Values() url.Values {
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

// RejectEmergencyInput carries the mandatory reason for a rejection.
type RejectEmergencyInput struct {
	Reason string `json:"rejectionReason" validate:"required"`
}

// ProvideContactsInput names the compatible inventory units offered to the
// requester.
type ProvideContactsInput struct {
	BloodUnitIDs []string `json:"bloodUnitIds" validate:"required,min=1"`
	Note         string   `json:"note,omitempty"`
}

// ListEmergencyRequests returns one page of emergency requests.
func (c *Client) ListEmergencyRequests(ctx context.Context, params ListEmergencyParams) (*model.Page[model.EmergencyRequest], error) {
	page, err := get[model.Page[model.EmergencyRequest]](ctx, c, "/emergency-requests", params.Values())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetEmergencyRequest returns a single emergency request by id.
func (c *Client) GetEmergencyRequest(ctx context.Context, id string) (*model.EmergencyRequest, error) {
	request, err := get[model.EmergencyRequest](ctx, c, "/emergency-requests/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ApproveEmergencyRequest approves a pending request.
func (c *Client) ApproveEmergencyRequest(ctx context.Context, id string) (*model.EmergencyRequest, error) {
	request, err := post[model.EmergencyRequest](ctx, c, "/emergency-requests/"+id+"/approve", nil)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// RejectEmergencyRequest rejects a pending request with a reason.
func (c *Client) RejectEmergencyRequest(ctx context.Context, id string, input RejectEmergencyInput) (*model.EmergencyRequest, error) {
	request, err := post[model.EmergencyRequest](ctx, c, "/emergency-requests/"+id+"/reject", input)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ProvideEmergencyContacts marks an approved request as served by the given
// units.
func (c *Client) ProvideEmergencyContacts(ctx context.Context, id string, input ProvideContactsInput) (*model.EmergencyRequest, error) {
	request, err := post[model.EmergencyRequest](ctx, c, "/emergency-requests/"+id+"/provide-contacts", input)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListEmergencyRequestLogs returns the append-only action log of a request.
func (c *Client) ListEmergencyRequestLogs(ctx context.Context, requestID string) ([]model.EmergencyRequestLog, error) {
	return get[[]model.EmergencyRequestLog](ctx, c, "/emergency-requests/"+requestID+"/logs", nil)
}
