package bloodlink

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// ListTemplatesParams filter the result-template list endpoint.
type ListTemplatesParams struct {
	Page   int
	Limit  int
	Active *bool
	Search string
}

// Values encodes the params as query parameters.
func (p ListTemplatesParams) Values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Active != nil {
		q.Set("active", strconv.FormatBool(*p.Active))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// SaveTemplateInput creates a template or, against an existing id, a new
// version of it.
type SaveTemplateInput struct {
	Name  string               `json:"name" validate:"required"`
	Items []model.TemplateItem `json:"items" validate:"required,min=1,dive"`
}

// ListTemplates returns one page of result templates.
func (c *Client) ListTemplates(ctx context.Context, params ListTemplatesParams) (*model.Page[model.DonationResultTemplate], error) {
	page, err := get[model.Page[model.DonationResultTemplate]](ctx, c, "/donation-result-templates", params.Values())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetTemplate returns a single template (latest version) by id.
func (c *Client) GetTemplate(ctx context.Context, id string) (*model.DonationResultTemplate, error) {
	tpl, err := get[model.DonationResultTemplate](ctx, c, "/donation-result-templates/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// CreateTemplate creates a new template at version 1.
func (c *Client) CreateTemplate(ctx context.Context, input SaveTemplateInput) (*model.DonationResultTemplate, error) {
	tpl, err := post[model.DonationResultTemplate](ctx, c, "/donation-result-templates", input)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// UpdateTemplate saves a new version of an existing template.
func (c *Client) UpdateTemplate(ctx context.Context, id string, input SaveTemplateInput) (*model.DonationResultTemplate, error) {
	tpl, err := put[model.DonationResultTemplate](ctx, c, "/donation-result-templates/"+id, input)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ActivateTemplate marks a template as the one offered by default when
// entering donation results.
func (c *Client) ActivateTemplate(ctx context.Context, id string) (*model.DonationResultTemplate, error) {
	tpl, err := post[model.DonationResultTemplate](ctx, c, "/donation-result-templates/"+id+"/activate", nil)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// DeleteTemplate removes a template.
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return del(ctx, c, "/donation-result-templates/"+id)
}
