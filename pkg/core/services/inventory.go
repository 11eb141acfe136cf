package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/pkg/cache"
	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// ErrNotSeparable is returned when component separation is requested for a
// unit that cannot be split.
var ErrNotSeparable = errors.New("unit cannot be separated")

// InventoryAPI is the slice of the API client the inventory services need.
type InventoryAPI interface {
	ListBloodUnits(ctx context.Context, params bloodlink.ListBloodUnitsParams) (*model.Page[model.BloodUnit], error)
	GetBloodUnit(ctx context.Context, id string) (*model.BloodUnit, error)
	CreateBloodUnit(ctx context.Context, input bloodlink.CreateBloodUnitInput) (*model.BloodUnit, error)
	UpdateBloodUnit(ctx context.Context, id string, input bloodlink.UpdateBloodUnitInput) (*model.BloodUnit, error)
	SeparateBloodUnit(ctx context.Context, id string) (*bloodlink.SeparatedUnits, error)
	ListBloodUnitActions(ctx context.Context, unitID string) ([]model.BloodUnitAction, error)
}

// ListBloodUnits returns one page of inventory units through the cache.
func ListBloodUnits(ctx context.Context, api InventoryAPI, store *cache.Cache, logger *zap.Logger, params bloodlink.ListBloodUnitsParams) (*model.Page[model.BloodUnit], error) {
	key := cache.Key(unitsResource, "list", params.Values())
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.Page[model.BloodUnit], error) {
		logger.Debug("fetching blood units", zap.Int("page", params.Page))
		return api.ListBloodUnits(ctx, params)
	})
}

// GetBloodUnit returns a single unit through the cache.
func GetBloodUnit(ctx context.Context, api InventoryAPI, store *cache.Cache, logger *zap.Logger, id string) (*model.BloodUnit, error) {
	key := cache.Key(unitsResource, "item", url.Values{"id": {id}})
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.BloodUnit, error) {
		return api.GetBloodUnit(ctx, id)
	})
}

// RegisterBloodUnit records a unit collected from a completed donation and
// invalidates the inventory cache.
func RegisterBloodUnit(ctx context.Context, api InventoryAPI, store *cache.Cache, logger *zap.Logger, input bloodlink.CreateBloodUnitInput) (*model.BloodUnit, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	unit, err := api.CreateBloodUnit(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.Info("blood unit registered",
		zap.String("id", unit.ID),
		zap.String("blood_type", unit.BloodType.String()),
		zap.Int("volume_ml", unit.TotalVolumeML))
	store.Invalidate(unitsResource, dashboardResource)
	return unit, nil
}

// UpdateBloodUnit edits a unit's volume or status. The server appends an
// audit action; the unit's cached entries (including its action log) are
// invalidated.
func UpdateBloodUnit(ctx context.Context, api InventoryAPI, store *cache.Cache, logger *zap.Logger, id string, input bloodlink.UpdateBloodUnitInput) (*model.BloodUnit, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	unit, err := api.UpdateBloodUnit(ctx, id, input)
	if err != nil {
		return nil, err
	}

	logger.Info("blood unit updated", zap.String("id", id))
	store.Invalidate(unitsResource, dashboardResource)
	return unit, nil
}

// SeparateBloodUnit splits an available whole-blood unit into red cells,
// plasma and platelets. Only unseparated whole blood qualifies; anything
// else fails before the API is called.
func SeparateBloodUnit(ctx context.Context, api InventoryAPI, store *cache.Cache, logger *zap.Logger, id string) (*bloodlink.SeparatedUnits, error) {
	unit, err := api.GetBloodUnit(ctx, id)
	if err != nil {
		return nil, err
	}

	if unit.ComponentType != model.ComponentWholeBlood {
		return nil, fmt.Errorf("%w: component type is %s", ErrNotSeparable, unit.ComponentType)
	}
	if unit.IsSeparated {
		return nil, fmt.Errorf("%w: already separated", ErrNotSeparable)
	}
	if unit.Status != model.UnitAvailable {
		return nil, fmt.Errorf("%w: status is %s", ErrNotSeparable, unit.Status)
	}

	separated, err := api.SeparateBloodUnit(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("blood unit separated",
		zap.String("parent_id", id),
		zap.String("red_cells_id", separated.RedCells.ID),
		zap.String("plasma_id", separated.Plasma.ID),
		zap.String("platelets_id", separated.Platelets.ID))
	store.Invalidate(unitsResource, dashboardResource)
	return separated, nil
}

// ListBloodUnitActions returns a unit's audit log through the cache.
func ListBloodUnitActions(ctx context.Context, api InventoryAPI, store *cache.Cache, logger *zap.Logger, unitID string) ([]model.BloodUnitAction, error) {
	key := cache.Key(unitsResource, "actions", url.Values{"id": {unitID}})
	return cache.GetAs(ctx, store, key, func(ctx context.Context) ([]model.BloodUnitAction, error) {
		return api.ListBloodUnitActions(ctx, unitID)
	})
}
