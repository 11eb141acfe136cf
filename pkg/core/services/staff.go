package services

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/pkg/cache"
	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// StaffAPI is the slice of the API client the staff services need.
type StaffAPI interface {
	ListStaff(ctx context.Context, params bloodlink.ListStaffParams) (*model.Page[model.StaffProfile], error)
	GetStaff(ctx context.Context, id string) (*model.StaffProfile, error)
	UpdateStaffProfile(ctx context.Context, input bloodlink.UpdateProfileInput) (*model.StaffProfile, error)
	UpdateAdminProfile(ctx context.Context, input bloodlink.UpdateProfileInput) (*model.AdminProfile, error)
}

// ListStaff returns one page of staff profiles through the cache.
func ListStaff(ctx context.Context, api StaffAPI, store *cache.Cache, logger *zap.Logger, params bloodlink.ListStaffParams) (*model.Page[model.StaffProfile], error) {
	key := cache.Key(staffResource, "list", params.Values())
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.Page[model.StaffProfile], error) {
		logger.Debug("fetching staff profiles", zap.Int("page", params.Page))
		return api.ListStaff(ctx, params)
	})
}

// GetStaff returns a single staff profile through the cache.
func GetStaff(ctx context.Context, api StaffAPI, store *cache.Cache, logger *zap.Logger, id string) (*model.StaffProfile, error) {
	key := cache.Key(staffResource, "item", url.Values{"id": {id}})
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.StaffProfile, error) {
		return api.GetStaff(ctx, id)
	})
}

// UpdateOwnStaffProfile edits the signed-in staff account's profile.
func UpdateOwnStaffProfile(ctx context.Context, api StaffAPI, store *cache.Cache, logger *zap.Logger, input bloodlink.UpdateProfileInput) (*model.StaffProfile, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	profile, err := api.UpdateStaffProfile(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.Info("staff profile updated", zap.String("id", profile.ID))
	store.Invalidate(staffResource)
	return profile, nil
}

// UpdateOwnAdminProfile edits the signed-in admin account's profile.
func UpdateOwnAdminProfile(ctx context.Context, api StaffAPI, store *cache.Cache, logger *zap.Logger, input bloodlink.UpdateProfileInput) (*model.AdminProfile, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	profile, err := api.UpdateAdminProfile(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.Info("admin profile updated", zap.String("id", profile.ID))
	store.Invalidate(staffResource)
	return profile, nil
}
