// Package services glues the typed API client, the query cache, and the
// domain core together: one function per user-visible operation. Reads go
// through the cache; mutations validate their input locally, call the API,
// and invalidate the related cache resources so the next read refetches.
//
// Every dependency is a small consumer-side interface so tests can stand in
// fakes for the client.
package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Cache resource names. Invalidation uses these as key prefixes.
const (
	campaignsResource = "campaigns"
	donationsResource = "donation-requests"
	unitsResource     = "blood-units"
	emergencyResource = "emergency-requests"
	blogsResource     = "blogs"
	templatesResource = "result-templates"
	staffResource     = "staffs"
	dashboardResource = "dashboard"
)

var validate = validator.New()

// validateInput runs struct validation on a request payload before it is
// sent anywhere. Field-level violations never reach the network.
func validateInput(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	return nil
}
