// Package results validates a donation result's free-form test-result map
// against the template it was captured with, before anything is sent to the
// API. This mirrors the dashboard's form-schema validation layer: invalid
// input is reported per field and never reaches the network.
package results

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// FieldError describes one invalid field in a result payload.
type FieldError struct {
	Key    string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Reason)
}

// ValidationError aggregates every invalid field found in a payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	reasons := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		reasons[i] = f.Error()
	}
	return "result validation failed: " + strings.Join(reasons, "; ")
}

// Validate checks a result-data map against a template. It returns a
// *ValidationError listing every violation, or nil when the payload is
// acceptable. Keys not declared by the template are rejected so stale form
// state cannot leak into a submission.
func Validate(tpl *model.DonationResultTemplate, data map[string]string) error {
	var fieldErrs []FieldError

	known := make(map[string]model.TemplateItem, len(tpl.Items))
	for _, item := range tpl.Items {
		known[item.Key] = item
	}

	for key := range data {
		if _, ok := known[key]; !ok {
			fieldErrs = append(fieldErrs, FieldError{Key: key, Reason: "not declared by template"})
		}
	}

	for _, item := range tpl.Items {
		value, present := data[item.Key]
		if !present || strings.TrimSpace(value) == "" {
			if item.Required {
				fieldErrs = append(fieldErrs, FieldError{Key: item.Key, Reason: "required"})
			}
			continue
		}

		if err := validateItem(item, value); err != nil {
			fieldErrs = append(fieldErrs, FieldError{Key: item.Key, Reason: err.Error()})
		}
	}

	if len(fieldErrs) > 0 {
		return &ValidationError{Fields: fieldErrs}
	}
	return nil
}

func validateItem(item model.TemplateItem, value string) error {
	switch item.Type {
	case model.ItemText:
		if item.MaxLength > 0 && len(value) > item.MaxLength {
			return fmt.Errorf("longer than %d characters", item.MaxLength)
		}

	case model.ItemNumber:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("not a number")
		}
		if item.MinValue != nil && n < *item.MinValue {
			return fmt.Errorf("below minimum %v", *item.MinValue)
		}
		if item.MaxValue != nil && n > *item.MaxValue {
			return fmt.Errorf("above maximum %v", *item.MaxValue)
		}

	case model.ItemSelect, model.ItemRadio:
		for _, opt := range item.Options {
			if value == opt {
				return nil
			}
		}
		return fmt.Errorf("not one of the allowed options")

	default:
		return fmt.Errorf("unknown item type %q", item.Type)
	}
	return nil
}
