package services

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/pkg/cache"
	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// TemplateAPI is the slice of the API client the template services need.
type TemplateAPI interface {
	ListTemplates(ctx context.Context, params bloodlink.ListTemplatesParams) (*model.Page[model.DonationResultTemplate], error)
	GetTemplate(ctx context.Context, id string) (*model.DonationResultTemplate, error)
	CreateTemplate(ctx context.Context, input bloodlink.SaveTemplateInput) (*model.DonationResultTemplate, error)
	UpdateTemplate(ctx context.Context, id string, input bloodlink.SaveTemplateInput) (*model.DonationResultTemplate, error)
	ActivateTemplate(ctx context.Context, id string) (*model.DonationResultTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error
}

// ListTemplates returns one page of result templates through the cache.
func ListTemplates(ctx context.Context, api TemplateAPI, store *cache.Cache, logger *zap.Logger, params bloodlink.ListTemplatesParams) (*model.Page[model.DonationResultTemplate], error) {
	key := cache.Key(templatesResource, "list", params.Values())
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.Page[model.DonationResultTemplate], error) {
		logger.Debug("fetching result templates", zap.Int("page", params.Page))
		return api.ListTemplates(ctx, params)
	})
}

// GetTemplate returns a single template through the cache.
func GetTemplate(ctx context.Context, api TemplateAPI, store *cache.Cache, logger *zap.Logger, id string) (*model.DonationResultTemplate, error) {
	key := cache.Key(templatesResource, "item", url.Values{"id": {id}})
	return cache.GetAs(ctx, store, key, func(ctx context.Context) (*model.DonationResultTemplate, error) {
		return api.GetTemplate(ctx, id)
	})
}

// CreateTemplate creates a template and invalidates the template cache.
func CreateTemplate(ctx context.Context, api TemplateAPI, store *cache.Cache, logger *zap.Logger, input bloodlink.SaveTemplateInput) (*model.DonationResultTemplate, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tpl, err := api.CreateTemplate(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.Info("result template created", zap.String("id", tpl.ID))
	store.Invalidate(templatesResource)
	return tpl, nil
}

// UpdateTemplate saves a new version of a template and invalidates the
// template cache.
func UpdateTemplate(ctx context.Context, api TemplateAPI, store *cache.Cache, logger *zap.Logger, id string, input bloodlink.SaveTemplateInput) (*model.DonationResultTemplate, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tpl, err := api.UpdateTemplate(ctx, id, input)
	if err != nil {
		return nil, err
	}

	logger.Info("result template updated", zap.String("id", id), zap.Int("version", tpl.Version))
	store.Invalidate(templatesResource)
	return tpl, nil
}

// ActivateTemplate marks a template as the default and invalidates the
// template cache.
func ActivateTemplate(ctx context.Context, api TemplateAPI, store *cache.Cache, logger *zap.Logger, id string) (*model.DonationResultTemplate, error) {
	tpl, err := api.ActivateTemplate(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("result template activated", zap.String("id", id))
	store.Invalidate(templatesResource)
	return tpl, nil
}

// DeleteTemplate removes a template and invalidates the template cache.
func DeleteTemplate(ctx context.Context, api TemplateAPI, store *cache.Cache, logger *zap.Logger, id string) error {
	if err := api.DeleteTemplate(ctx, id); err != nil {
		return err
	}

	logger.Info("result template deleted", zap.String("id", id))
	store.Invalidate(templatesResource)
	return nil
}
