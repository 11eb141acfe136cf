package derive

import (
	"time"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// CampaignStatusAt classifies a campaign by its date range at the given
// instant. A campaign with no end date stays active once started. Both
// boundaries are inclusive: now == start and now == end classify as active.
func CampaignStatusAt(start time.Time, end *time.Time, now time.Time) model.CampaignStatus {
	if now.Before(start) {
		return model.CampaignNotStarted
	}
	if end != nil && now.After(*end) {
		return model.CampaignEnded
	}
	return model.CampaignActive
}
