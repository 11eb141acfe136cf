package bloodlink

import (
	"context"
	"net/url"
	"strconv"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// ListStaffParams filter the staff profile list endpoint.
type ListStaffParams struct {
	Page   int
	Limit  int
	Role   model.Role
	Search string
}

// Values encodes the params as query parameters.
func (p ListStaffParams) Values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Role != "" {
		q.Set("role", string(p.Role))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// UpdateProfileInput edits the signed-in account's own profile.
type UpdateProfileInput struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Avatar    *string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// AdminWhoAmI resolves the signed-in account as an admin profile. The
// backend answers 401/403 when the session does not belong to an admin.
func (c *Client) AdminWhoAmI(ctx context.Context) (*model.AdminProfile, error) {
	profile, err := get[model.AdminProfile](ctx, c, "/admins/me", nil)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// StaffWhoAmI resolves the signed-in account as a staff profile.
func (c *Client) StaffWhoAmI(ctx context.Context) (*model.StaffProfile, error) {
	profile, err := get[model.StaffProfile](ctx, c, "/staffs/me", nil)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListStaff returns one page of staff profiles.
func (c *Client) ListStaff(ctx context.Context, params ListStaffParams) (*model.Page[model.StaffProfile], error) {
	page, err := get[model.Page[model.StaffProfile]](ctx, c, "/staffs", params.Values())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetStaff returns a single staff profile by id.
func (c *Client) GetStaff(ctx context.Context, id string) (*model.StaffProfile, error) {
	profile, err := get[model.StaffProfile](ctx, c, "/staffs/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateStaffProfile edits the signed-in staff account's profile.
func (c *Client) UpdateStaffProfile(ctx context.Context, input UpdateProfileInput) (*model.StaffProfile, error) {
	profile, err := patch[model.StaffProfile](ctx, c, "/staffs/me", input)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateAdminProfile edits the signed-in admin account's profile.
func (c *Client) UpdateAdminProfile(ctx context.Context, input UpdateProfileInput) (*model.AdminProfile, error) {
	profile, err := patch[model.AdminProfile](ctx, c, "/admins/me", input)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
