package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

// ErrRoleMismatch is returned when the signed-in account does not belong to
// the area (admin vs staff) the user tried to enter.
var ErrRoleMismatch = errors.New("signed-in account does not belong to this area")

// ProfileAPI is the slice of the API client the identity resolution needs.
// The identity provider's own claims carry no role; the backend's who-am-I
// endpoints are the only source of truth.
type ProfileAPI interface {
	AdminWhoAmI(ctx context.Context) (*model.AdminProfile, error)
	StaffWhoAmI(ctx context.Context) (*model.StaffProfile, error)
}

// SessionStore is the part of the auth session the role gate needs.
type SessionStore interface {
	SignOut() error
}

// Identity is the resolved signed-in account.
type Identity struct {
	Role  model.Role
	Name  string
	Email string
}

// ResolveIdentity resolves the signed-in account for the expected area and
// enforces the role gate. On a mismatch the local session is dropped so the
// next sign-in starts clean instead of leaving a silently authenticated
// session behind.
func ResolveIdentity(ctx context.Context, api ProfileAPI, session SessionStore, logger *zap.Logger, expected model.Role) (*Identity, error) {
	var identity *Identity

	switch expected {
	case model.RoleAdmin:
		profile, err := api.AdminWhoAmI(ctx)
		if err != nil {
			return nil, err
		}
		identity = &Identity{
			Role:  profile.Account.Role,
			Name:  profile.FirstName + " " + profile.LastName,
			Email: profile.Account.Email,
		}
	case model.RoleStaff, model.RoleDoctor:
		profile, err := api.StaffWhoAmI(ctx)
		if err != nil {
			return nil, err
		}
		identity = &Identity{
			Role:  profile.Account.Role,
			Name:  profile.FirstName + " " + profile.LastName,
			Email: profile.Account.Email,
		}
	default:
		return nil, fmt.Errorf("unknown role %q", expected)
	}

	if identity.Role != expected {
		logger.Warn("role mismatch, dropping local session",
			zap.String("expected", string(expected)),
			zap.String("actual", string(identity.Role)))
		if err := session.SignOut(); err != nil {
			logger.Warn("failed to drop session after role mismatch", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: expected %s, account is %s", ErrRoleMismatch, expected, identity.Role)
	}

	return identity, nil
}
