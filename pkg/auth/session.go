// Package auth manages the identity-provider session for the CLI: an
// in-memory token cache guarded by a mutex, a token file persisted per
// environment, automatic refresh of expired tokens, and an interactive
// sign-in flow. It bridges the provider to the API client through a
// TokenGetter handed over at construction time.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/bloodlink/bloodlink-admin/internal/config"
	"github.com/bloodlink/bloodlink-admin/pkg/clients/bloodlink"
)

const (
	authPort       = 3000
	authTimeout    = 5 * time.Minute
	callbackPath   = "/oauth/callback"
	tokenDirName   = ".bloodlink/tokens"
	tokenFilePerms = 0600
	tokenDirPerms  = 0700
)

// ErrNotSignedIn is returned by Token when there is no usable session.
var ErrNotSignedIn = errors.New("not signed in")

// Session holds the identity-provider session for one environment.
type Session struct {
	oauthCfg *oauth2.Config
	env      string
	logger   *zap.Logger

	// tokenDir is overridable in tests; defaults to ~/.bloodlink/tokens.
	tokenDir string

	mu    sync.Mutex
	token *oauth2.Token
}

// NewSession builds a session from the identity-provider configuration.
func NewSession(authCfg config.AuthConfig, env string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		oauthCfg: &oauth2.Config{
			ClientID: authCfg.ClientID,
			Endpoint: oauth2.Endpoint{
				AuthURL:  authCfg.AuthURL,
				TokenURL: authCfg.TokenURL,
			},
			RedirectURL: fmt.Sprintf("http://localhost:%d%s", authPort, callbackPath),
			Scopes:      []string{"openid", "profile", "email"},
		},
		env:    env,
		logger: logger,
	}
}

// TokenGetter adapts the session to the API client's credential contract.
// "Not signed in" maps to an empty token, not an error, so unauthenticated
// requests go out and the API's 401 is what the caller observes.
func (s *Session) TokenGetter() bloodlink.TokenGetter {
	return func(ctx context.Context, template string) (string, error) {
		token, err := s.Token(ctx)
		if errors.Is(err, ErrNotSignedIn) {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		return token.AccessToken, nil
	}
}

// Token returns a valid access token, refreshing or loading from disk as
// needed. Thread-safe; concurrent callers are serialized so a refresh runs
// at most once.
func (s *Session) Token(ctx context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != nil && s.token.Valid() {
		return s.token, nil
	}

	fileToken, err := s.loadTokenFile()
	if err != nil {
		s.logger.Warn("failed to load token file", zap.Error(err))
	}
	if fileToken == nil && s.token == nil {
		return nil, ErrNotSignedIn
	}

	candidate := fileToken
	if candidate == nil {
		candidate = s.token
	}

	if candidate.Valid() {
		s.token = candidate
		return candidate, nil
	}

	if candidate.RefreshToken == "" {
		return nil, ErrNotSignedIn
	}

	refreshed, err := s.oauthCfg.TokenSource(ctx, candidate).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	if err := s.saveTokenFile(refreshed); err != nil {
		// Still valid in memory; persisting is best effort
		s.logger.Warn("failed to save refreshed token", zap.Error(err))
	}

	s.token = refreshed
	return refreshed, nil
}

// SignIn runs the interactive authorization-code flow: prints the provider
// URL, waits for the local callback, exchanges the code, and persists the
// token for this environment.
func (s *Session) SignIn(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	authURL := s.oauthCfg.AuthCodeURL("state", oauth2.AccessTypeOffline)
	fmt.Printf("\nVisit this URL to sign in:\n%s\n\n", authURL)

	code, err := listenForAuthCallback(ctx)
	if err != nil {
		return fmt.Errorf("failed to get authorization code: %w", err)
	}

	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange code for token: %w", err)
	}

	if err := s.saveTokenFile(token); err != nil {
		s.logger.Warn("failed to save token file", zap.Error(err))
	}

	s.token = token
	return nil
}

// SignOut clears the in-memory token and deletes the persisted token file.
// Used both for explicit logout and for the role-mismatch path, where the
// local session is dropped so the next sign-in starts clean.
func (s *Session) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
	return s.deleteTokenFile()
}

// SetToken seeds the in-memory session directly. Intended for tests.
func (s *Session) SetToken(token *oauth2.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// listenForAuthCallback starts a local HTTP server and waits for the
// identity provider to redirect back with a code.
func listenForAuthCallback(ctx context.Context) (string, error) {
	codeChan := make(chan string, 1)
	errChan := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			http.Error(w, "Sign-in failed", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `
			<html>
				<head><title>Signed in</title></head>
				<body>
					<h1>Signed in.</h1>
					<p>You can close this window and return to the terminal.</p>
				</body>
			</html>
		`)

		codeChan <- code
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", authPort),
		Handler: mux,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("callback server error: %w", err)
		}
	}()

	timeoutCtx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	var code string
	var authErr error

	select {
	case code = <-codeChan:
	case authErr = <-errChan:
	case <-timeoutCtx.Done():
		authErr = fmt.Errorf("sign-in timeout after %v", authTimeout)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)

	if authErr != nil {
		return "", authErr
	}
	return code, nil
}

func (s *Session) tokenFilePath() (string, error) {
	dir := s.tokenDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, tokenDirName)
	}
	return filepath.Join(dir, fmt.Sprintf("token-%s.json", s.env)), nil
}

func (s *Session) loadTokenFile() (*oauth2.Token, error) {
	path, err := s.tokenFilePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return &token, nil
}

func (s *Session) saveTokenFile(token *oauth2.Token) error {
	path, err := s.tokenFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), tokenDirPerms); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := os.WriteFile(path, data, tokenFilePerms); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

func (s *Session) deleteTokenFile() error {
	path, err := s.tokenFilePath()
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete token file: %w", err)
	}
	return nil
}
