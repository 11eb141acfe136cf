package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/internal/config"
	"github.com/bloodlink/bloodlink-admin/pkg/auth"
	"github.com/bloodlink/bloodlink-admin/pkg/cache"
	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg     *config.Config
	Client  *bloodlink.Client
	Cache   *cache.Cache
	Session *auth.Session
	Role    model.Role
	Logger  *zap.Logger
	Ctx     context.Context
}
