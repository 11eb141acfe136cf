package bloodlink

import (
	"context"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// GetDashboardStats returns the aggregate counters for the landing screen.
func (c *Client) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	stats, err := get[model.DashboardStats](ctx, c, "/dashboard/stats", nil)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
