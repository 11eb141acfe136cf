package bloodlink

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// ListBloodUnitsParams filter the inventory list endpoint.
type ListBloodUnitsParams struct {
	Page          int
	Limit         int
	Status        model.BloodUnitStatus
	Group         model.BloodGroup
	Rh            model.Rh
	ComponentType model.ComponentType
	Search        string
}

// Values encodes the params as query parameters.
func (p ListBloodUnitsParams) Values() url.Values {
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
	if p.Group != "" {
		q.Set("bloodGroup", string(p.Group))
	}
	if p.Rh != "" {
		q.Set("bloodRh", string(p.Rh))
	}
	if p.ComponentType != "" {
		q.Set("componentType", string(p.ComponentType))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// CreateBloodUnitInput registers a unit collected from a completed donation.
// The dashboard requires at least a standard 50ml collection.
type CreateBloodUnitInput struct {
	MemberID      string              `json:"memberId" validate:"required"`
	DonationID    string              `json:"donationRequestId" validate:"required"`
	BloodType     model.BloodType     `json:"bloodType" validate:"required"`
	ComponentType model.ComponentType `json:"componentType" validate:"required,oneof=whole_blood red_cells plasma platelets"`
	TotalVolumeML int                 `json:"totalVolumeMl" validate:"required,min=50"`
	ExpiredDate   time.Time           `json:"expiredDate" validate:"required"`
}

// UpdateBloodUnitInput edits a unit's remaining volume and/or status. The
// server records an audit action for each change.
type UpdateBloodUnitInput struct {
	RemainingML *int                   `json:"remainingVolumeMl,omitempty" validate:"omitempty,min=0"`
	Status      *model.BloodUnitStatus `json:"status,omitempty" validate:"omitempty,oneof=available used expired damaged"`
	Description string                 `json:"description,omitempty"`
}

// SeparatedUnits is the result of splitting a whole-blood unit into its
// three derived component units.
type SeparatedUnits struct {
	RedCells  model.BloodUnit `json:"redCells"`
	Plasma    model.BloodUnit `json:"plasma"`
	Platelets model.BloodUnit `json:"platelets"`
}

// ListBloodUnits returns one page of inventory units.
func (c *Client) ListBloodUnits(ctx context.Context, params ListBloodUnitsParams) (*model.Page[model.BloodUnit], error) {
	page, err := get[model.Page[model.BloodUnit]](ctx, c, "/blood-units", params.Values())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetBloodUnit returns a single unit by id.
func (c *Client) GetBloodUnit(ctx context.Context, id string) (*model.BloodUnit, error) {
	unit, err := get[model.BloodUnit](ctx, c, "/blood-units/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// CreateBloodUnit registers a newly collected unit.
func (c *Client) CreateBloodUnit(ctx context.Context, input CreateBloodUnitInput) (*model.BloodUnit, error) {
	unit, err := post[model.BloodUnit](ctx, c, "/blood-units", input)
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// UpdateBloodUnit edits a unit's volume or status.
func (c *Client) UpdateBloodUnit(ctx context.Context, id string, input UpdateBloodUnitInput) (*model.BloodUnit, error) {
	unit, err := patch[model.BloodUnit](ctx, c, "/blood-units/"+id, input)
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// SeparateBloodUnit splits a whole-blood unit into red cells, plasma and
// platelets. The parent unit is marked separated by the server.
func (c *Client) SeparateBloodUnit(ctx context.Context, id string) (*SeparatedUnits, error) {
	units, err := post[SeparatedUnits](ctx, c, "/blood-units/"+id+"/separate", nil)
	if err != nil {
		return nil, err
	}
	return &units, nil
}

// ListBloodUnitActions returns the append-only audit log of a unit.
func (c *Client) ListBloodUnitActions(ctx context.Context, unitID string) ([]model.BloodUnitAction, error) {
	return get[[]model.BloodUnitAction](ctx, c, "/blood-units/"+unitID+"/actions", nil)
}
