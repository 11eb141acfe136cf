package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/pkg/cache"
	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/compat"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
	"github.com/bloodlink/bloodlink-admin/pkg/core/workflow"
)

// ErrActionNotAllowed is returned when a staff action is not available for
// the request's current status.
var ErrActionNotAllowed = errors.New("action not allowed for current status")

// ErrIncompatibleUnit is returned when a chosen unit does not satisfy the
// request's blood type or component requirement.
var ErrIncompatibleUnit = errors.New("unit is not compatible with the request")

// EmergencyAPI is the slice of the API client the emergency services need.
type EmergencyAPI interface {
	ListEmergencyRequests(ctx context.Context, params bloodlink.ListEmergencyParams) (*model.Page[model.EmergencyRequest], error)
	GetEmergencyRequest(ctx context.Context, id string) (*model.EmergencyRequest, error)
	ApproveEmergencyRequest(ctx context.Context, id string) (*model.EmergencyRequest, error)
	RejectEmergencyRequest(ctx context.Context, id string, input bloodlink.RejectEmergencyInput) (*model.EmergencyRequest, error)
	ProvideEmergencyContacts(ctx context.Context, id string, input bloodlink.ProvideContactsInput) (*model.EmergencyRequest, error)
	ListEmergencyRequestLogs(ctx context.Context, requestID string) ([]model.EmergencyRequestLog, error)
}

// UnitLister is the inventory access the compatibility search needs.
type UnitLister interface {
	ListBloodUnits(ctx context.Context, params bloodlink.ListBloodUnitsParams) (*model.Page[model.BloodUnit], error)
}

// ListEmergencyRequests returns one page of requests through the cache.
func ListEmergencyRequests(ctx context.Context, api EmergencyAPI, store *cache.Cache, logger *zap.Logger, params bloodlink.ListEmergencyParams) (*model.Page[model.EmergencyRequest], error) {
	key := cache.Key(emergencyResource, "list", params.Values())
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.Page[model.EmergencyRequest], error) {
		logger.Debug("fetching emergency requests", zap.Int("page", params.Page))
		return api.ListEmergencyRequests(ctx, params)
	})
}

// GetEmergencyRequest returns a single request through the cache.
func GetEmergencyRequest(ctx context.Context, api EmergencyAPI, store *cache.Cache, logger *zap.Logger, id string) (*model.EmergencyRequest, error) {
	key := cache.Key(emergencyResource, "item", url.Values{"id": {id}})
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.EmergencyRequest, error) {
		return api.GetEmergencyRequest(ctx, id)
	})
}

// CompatibleUnits returns the available inventory units that can serve the
// request: the server pre-filters by component and availability, the
// ABO/Rh check runs client-side.
func CompatibleUnits(ctx context.Context, inventory UnitLister, logger *zap.Logger, request *model.EmergencyRequest) ([]model.BloodUnit, error) {
	page, err := inventory.ListBloodUnits(ctx, bloodlink.ListBloodUnitsParams{
		Status:        model.UnitAvailable,
		ComponentType: request.ComponentType,
		Limit:         100,
	})
	if err != nil {
		return nil, err
	}

	matched := compat.FilterUnits(request.BloodType, request.ComponentType, page.Data)
	logger.Debug("compatibility filter applied",
		zap.String("required", request.BloodType.String()),
		zap.Int("candidates", len(page.Data)),
		zap.Int("matched", len(matched)))
	return matched, nil
}

// ApproveEmergencyRequest approves a pending request.
func ApproveEmergencyRequest(ctx context.Context, api EmergencyAPI, store *cache.Cache, logger *zap.Logger, id string) (*model.EmergencyRequest, error) {
	request, err := api.GetEmergencyRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	status := workflow.EmergencyStatus(request.Status)
	if !workflow.CanActOnEmergency(status, workflow.ActionApprove) {
		return nil, fmt.Errorf("%w: approve on %s", ErrActionNotAllowed, status)
	}

	updated, err := api.ApproveEmergencyRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("emergency request approved", zap.String("id", id))
	store.Invalidate(emergencyResource, dashboardResource)
	return updated, nil
}

// RejectEmergencyRequest rejects a pending request with a mandatory reason.
func RejectEmergencyRequest(ctx context.Context, api EmergencyAPI, store *cache.Cache, logger *zap.Logger, id, reason string) (*model.EmergencyRequest, error) {
	input := bloodlink.RejectEmergencyInput{Reason: reason}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	request, err := api.GetEmergencyRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	status := workflow.EmergencyStatus(request.Status)
	if !workflow.CanActOnEmergency(status, workflow.ActionReject) {
		return nil, fmt.Errorf("%w: reject on %s", ErrActionNotAllowed, status)
	}

	updated, err := api.RejectEmergencyRequest(ctx, id, input)
	if err != nil {
		return nil, err
	}

	logger.Info("emergency request rejected", zap.String("id", id))
	store.Invalidate(emergencyResource, dashboardResource)
	return updated, nil
}

// ProvideEmergencyContacts serves an approved request with the chosen units.
// Every chosen unit must pass the compatibility filter; a single mismatch
// fails the whole action before the API is called.
func ProvideEmergencyContacts(ctx context.Context, api EmergencyAPI, inventory UnitLister, store *cache.Cache, logger *zap.Logger, id string, unitIDs []string, note string) (*model.EmergencyRequest, error) {
	if len(unitIDs) == 0 {
		return nil, fmt.Errorf("at least one blood unit must be selected")
	}

	request, err := api.GetEmergencyRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	status := workflow.EmergencyStatus(request.Status)
	if !workflow.CanActOnEmergency(status, workflow.ActionProvideContacts) {
		return nil, fmt.Errorf("%w: provide contacts on %s", ErrActionNotAllowed, status)
	}

	matched, err := CompatibleUnits(ctx, inventory, logger, request)
	if err != nil {
		return nil, err
	}

	matchedIDs := make(map[string]bool, len(matched))
	for _, unit := range matched {
		matchedIDs[unit.ID] = true
	}
	for _, unitID := range unitIDs {
		if !matchedIDs[unitID] {
			return nil, fmt.Errorf("%w: %s", ErrIncompatibleUnit, unitID)
		}
	}

	updated, err := api.ProvideEmergencyContacts(ctx, id, bloodlink.ProvideContactsInput{
		BloodUnitIDs: unitIDs,
		Note:         note,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("emergency contacts provided",
		zap.String("id", id),
		zap.Int("units", len(unitIDs)))
	store.Invalidate(emergencyResource, unitsResource, dashboardResource)
	return updated, nil
}

// ListEmergencyRequestLogs returns a request's action log through the cache.
func ListEmergencyRequestLogs(ctx context.Context, api EmergencyAPI, store *cache.Cache, logger *zap.Logger, requestID string) ([]model.EmergencyRequestLog, error) {
	key := cache.Key(emergencyResource, "logs", url.Values{"id": {requestID}})
	return cache.GetAs(ctx, store, key, func(ctx context.Context) ([]model.EmergencyRequestLog, error) {
		return api.ListEmergencyRequestLogs(ctx, requestID)
	})
}
