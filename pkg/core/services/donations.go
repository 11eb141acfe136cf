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
	"github.com/bloodlink/bloodlink-admin/pkg/core/results"
	"github.com/bloodlink/bloodlink-admin/pkg/core/workflow"
)

// ErrInvalidTransition is returned when a requested status change is not in
// the donation workflow table. The server would likely reject it too; the
// check here keeps the action list honest.
var ErrInvalidTransition = errors.New("status transition not allowed")

// ErrResultNotAllowed is returned when results are submitted for a donation
// that has not completed.
var ErrResultNotAllowed = errors.New("donation has no completed collection to attach results to")

// DonationAPI is the slice of the API client the donation services need.
type DonationAPI interface {
	ListDonations(ctx context.Context, params bloodlink.ListDonationsParams) (*model.Page[model.DonationRequest], error)
	GetDonation(ctx context.Context, id string) (*model.DonationRequest, error)
	UpdateDonationStatus(ctx context.Context, id string, input bloodlink.UpdateDonationStatusInput) (*model.DonationRequest, error)
	GetDonationResult(ctx context.Context, donationID string) (*model.DonationResult, error)
	CreateDonationResult(ctx context.Context, donationID string, input bloodlink.CreateDonationResultInput) (*model.DonationResult, error)
}

// TemplateFetcher resolves the result template a submission is shaped by.
type TemplateFetcher interface {
	GetTemplate(ctx context.Context, id string) (*model.DonationResultTemplate, error)
}

// ListDonations returns one page of donation requests through the cache.
func ListDonations(ctx context.Context, api DonationAPI, store *cache.Cache, logger *zap.Logger, params bloodlink.ListDonationsParams) (*model.Page[model.DonationRequest], error) {
	key := cache.Key(donationsResource, "list", params.Values())
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.Page[model.DonationRequest], error) {
		logger.Debug("fetching donation requests", zap.Int("page", params.Page))
		return api.ListDonations(ctx, params)
	})
}

// GetDonation returns a single donation request through the cache.
func GetDonation(ctx context.Context, api DonationAPI, store *cache.Cache, logger *zap.Logger, id string) (*model.DonationRequest, error) {
	key := cache.Key(donationsResource, "item", url.Values{"id": {id}})
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.DonationRequest, error) {
		return api.GetDonation(ctx, id)
	})
}

// UpdateDonationStatus moves a donation request to a new workflow state. The
// transition table is consulted against the request's current status before
// anything is sent; the server stays the final authority.
func UpdateDonationStatus(ctx context.Context, api DonationAPI, store *cache.Cache, logger *zap.Logger, id string, to workflow.DonationStatus, note string) (*model.DonationRequest, error) {
	donation, err := api.GetDonation(ctx, id)
	if err != nil {
		return nil, err
	}

	from := workflow.DonationStatus(donation.CurrentStatus)
	if !workflow.CanTransitionDonation(from, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	updated, err := api.UpdateDonationStatus(ctx, id, bloodlink.UpdateDonationStatusInput{
		Status: to,
		Note:   note,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("donation status updated",
		zap.String("id", id),
		zap.String("from", string(from)),
		zap.String("to", string(to)))
	store.Invalidate(donationsResource, dashboardResource)
	return updated, nil
}

// CompleteDonation marks a checked-in donation as completed and registers the
// collected blood unit in one step. The status transition is gated by the
// workflow table like any other; the unit is tied back to the donation.
func CompleteDonation(ctx context.Context, api DonationAPI, inventory InventoryAPI, store *cache.Cache, logger *zap.Logger, id string, unit bloodlink.CreateBloodUnitInput) (*model.DonationRequest, *model.BloodUnit, error) {
	unit.DonationID = id
	if err := validateInput(unit); err != nil {
		return nil, nil, err
	}

	donation, err := UpdateDonationStatus(ctx, api, store, logger, id, workflow.DonationCompleted, "")
	if err != nil {
		return nil, nil, err
	}

	registered, err := RegisterBloodUnit(ctx, inventory, store, logger, unit)
	if err != nil {
		return donation, nil, fmt.Errorf("donation completed but unit registration failed: %w", err)
	}

	return donation, registered, nil
}

// SubmitDonationResult validates the result data against its template and
// attaches it to a completed donation request.
func SubmitDonationResult(ctx context.Context, api DonationAPI, templates TemplateFetcher, store *cache.Cache, logger *zap.Logger, donationID, templateID string, data map[string]string, notes string) (*model.DonationResult, error) {
	donation, err := api.GetDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	status := workflow.DonationStatus(donation.CurrentStatus)
	if status != workflow.DonationCompleted && status != workflow.DonationResultReturned {
		return nil, fmt.Errorf("%w (current status: %s)", ErrResultNotAllowed, status)
	}

	tpl, err := templates.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if err := results.Validate(tpl, data); err != nil {
		return nil, err
	}

	result, err := api.CreateDonationResult(ctx, donationID, bloodlink.CreateDonationResultInput{
		TemplateID: templateID,
		ResultData: data,
		Notes:      notes,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("donation result submitted",
		zap.String("donation_id", donationID),
		zap.String("template_id", templateID))
	store.Invalidate(donationsResource)
	return result, nil
}
