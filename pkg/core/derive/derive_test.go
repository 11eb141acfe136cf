package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

func TestSlugify_Basic(t *testing.T) {
	assert.Equal(t, "blood-donation-drive", Slugify("Blood Donation Drive"))
}

func TestSlugify_StripsPunctuationAndDiacritics(t *testing.T) {
	// Diacritic runes are outside the ASCII word class and get dropped
	assert.Equal(t, "hin-mu-2025", Slugify("Hiến Máu 2025!"))
	assert.Equal(t, "whats-new-qa", Slugify("What's New? (Q&A)"))
}

func TestSlugify_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a-b-c", Slugify("  a   b\t c  "))
	assert.Equal(t, "a-b", Slugify("a - b"))
}

func TestSlugify_Idempotent(t *testing.T) {
	titles := []string{
		"Hiến Máu 2025!",
		"Blood Donation Drive",
		"  a   b\t c  ",
		"already-a-slug",
		"--- leading and trailing ---",
	}

	for _, title := range titles {
		once := Slugify(title)
		twice := Slugify(once)
		assert.Equal(t, once, twice, "Slugify not idempotent for %q", title)
	}
}

func TestSlugify_NoEdgeArtifacts(t *testing.T) {
	slug := Slugify("!!! Urgent: O- needed !!!")
	assert.Equal(t, "urgent-o-needed", slug)
	assert.False(t, len(slug) > 0 && (slug[0] == '-' || slug[len(slug)-1] == '-'))
}

func TestCampaignStatusAt_BeforeStart(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, model.CampaignNotStarted, CampaignStatusAt(start, nil, now))
}

func TestCampaignStatusAt_NoEndDate(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, model.CampaignActive, CampaignStatusAt(start, nil, now))
}

func TestCampaignStatusAt_WithinRange(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, model.CampaignActive, CampaignStatusAt(start, &end, now))
}

func TestCampaignStatusAt_AfterEnd(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, model.CampaignEnded, CampaignStatusAt(start, &end, now))
}

func TestCampaignStatusAt_Boundaries(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	// Exactly at start and exactly at end both count as active
	assert.Equal(t, model.CampaignActive, CampaignStatusAt(start, &end, start))
	assert.Equal(t, model.CampaignActive, CampaignStatusAt(start, &end, end))
}
