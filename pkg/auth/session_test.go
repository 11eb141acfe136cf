package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/bloodlink/bloodlink-admin/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AuthURL:        "https://auth.bloodlink.example.com/oauth/authorize",
		TokenURL:       "https://auth.bloodlink.example.com/oauth/token",
		ClientID:       "bloodlink-admin",
		PublishableKey: "pk_test_abc",
		TokenTemplate:  "default",
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(testAuthConfig(), "test", nil)
	s.tokenDir = t.TempDir()
	return s
}

func validToken() *oauth2.Token {
	return &oauth2.Token{
		AccessToken: "access-abc",
		TokenType:   "Bearer",
		Expiry:      time.Now().Add(time.Hour),
	}
}

func TestToken_NotSignedIn(t *testing.T) {
	s := newTestSession(t)

	_, err := s.Token(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestToken_MemoryCachedToken(t *testing.T) {
	s := newTestSession(t)
	s.SetToken(validToken())

	token, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-abc", token.AccessToken)
}

func TestToken_LoadsPersistedToken(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.saveTokenFile(validToken()))

	token, err := s.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-abc", token.AccessToken)
}

func TestSignOut_ClearsMemoryAndFile(t *testing.T) {
	s := newTestSession(t)
	s.SetToken(validToken())
	require.NoError(t, s.saveTokenFile(validToken()))

	require.NoError(t, s.SignOut())

	_, err := s.Token(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)

	loaded, err := s.loadTokenFile()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSignOut_NoTokenFileIsFine(t *testing.T) {
	s := newTestSession(t)
	assert.NoError(t, s.SignOut())
}

func TestTokenGetter_MapsNotSignedInToEmptyToken(t *testing.T) {
	s := newTestSession(t)
	getter := s.TokenGetter()

	token, err := getter(context.Background(), "default")
	require.NoError(t, err, "missing session must not fail the request")
	assert.Empty(t, token)
}

func TestTokenGetter_ReturnsAccessToken(t *testing.T) {
	s := newTestSession(t)
	s.SetToken(validToken())
	getter := s.TokenGetter()

	token, err := getter(context.Background(), "default")
	require.NoError(t, err)
	assert.Equal(t, "access-abc", token)
}

func TestToken_ExpiredWithoutRefreshToken(t *testing.T) {
	s := newTestSession(t)
	expired := &oauth2.Token{
		AccessToken: "stale",
		Expiry:      time.Now().Add(-time.Hour),
	}
	require.NoError(t, s.saveTokenFile(expired))

	_, err := s.Token(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestTokenFile_RoundTrip(t *testing.T) {
	s := newTestSession(t)
	original := validToken()
	original.RefreshToken = "refresh-xyz"

	require.NoError(t, s.saveTokenFile(original))

	loaded, err := s.loadTokenFile()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, original.AccessToken, loaded.AccessToken)
	assert.Equal(t, original.RefreshToken, loaded.RefreshToken)
}
