package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-admin/pkg/core/model"
)

type fakeProfileAPI struct {
	adminRole model.Role
	staffRole model.Role
}

func (f *fakeProfileAPI) AdminWhoAmI(_ context.Context) (*model.AdminProfile, error) {
	return &model.AdminProfile{
		FirstName: "Ada",
		LastName:  "Admin",
		Account:   model.Account{Email: "ada@bloodlink.example", Role: f.adminRole},
	}, nil
}

func (f *fakeProfileAPI) StaffWhoAmI(_ context.Context) (*model.StaffProfile, error) {
	return &model.StaffProfile{
		FirstName: "Sam",
		LastName:  "Staff",
		Account:   model.Account{Email: "sam@bloodlink.example", Role: f.staffRole},
	}, nil
}

type fakeSession struct {
	signOutCalls int
}

func (f *fakeSession) SignOut() error {
	f.signOutCalls++
	return nil
}

func TestResolveIdentityMatchingRole(t *testing.T) {
	api := &fakeProfileAPI{adminRole: model.RoleAdmin, staffRole: model.RoleStaff}
	session := &fakeSession{}

	identity, err := ResolveIdentity(context.Background(), api, session, zap.NewNop(), model.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, identity.Role)
	assert.Equal(t, "Ada Admin", identity.Name)
	assert.Zero(t, session.signOutCalls)
}

func TestResolveIdentityMismatchDropsSession(t *testing.T) {
	// A staff account trying to enter the admin area.
	api := &fakeProfileAPI{adminRole: model.RoleStaff}
	session := &fakeSession{}

	_, err := ResolveIdentity(context.Background(), api, session, zap.NewNop(), model.RoleAdmin)

	require.ErrorIs(t, err, ErrRoleMismatch)
	assert.Equal(t, 1, session.signOutCalls)
}

func TestResolveIdentityDoctorUsesStaffEndpoint(t *testing.T) {
	api := &fakeProfileAPI{staffRole: model.RoleDoctor}
	session := &fakeSession{}

	identity, err := ResolveIdentity(context.Background(), api, session, zap.NewNop(), model.RoleDoctor)

	require.NoError(t, err)
	assert.Equal(t, model.RoleDoctor, identity.Role)
}

func TestResolveIdentityUnknownRole(t *testing.T) {
	api := &fakeProfileAPI{}
	session := &fakeSession{}

	_, err := ResolveIdentity(context.Background(), api, session, zap.NewNop(), model.Role("superuser"))

	require.Error(t, err)
	assert.Zero(t, session.signOutCalls)
}
