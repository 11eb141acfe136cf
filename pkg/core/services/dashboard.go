package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/pkg/cache"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// StatsAPI is the slice of the API client the dashboard service needs.
type StatsAPI interface {
	GetDashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

// GetDashboardStats returns the aggregate counters through the cache. Every
// mutation service invalidates the dashboard resource, so the counters
// refresh after any write.
func GetDashboardStats(ctx context.Context, api StatsAPI, store *cache.Cache, logger *zap.Logger) (*model.DashboardStats, error) {
	key := cache.Key(dashboardResource, "stats", nil)
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.DashboardStats, error) {
		logger.Debug("fetching dashboard stats")
		return api.GetDashboardStats(ctx)
	})
}
