package sdk

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// LoginPath is the view a session-invalidating response navigates to.
const LoginPath = "/login"

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// publicEndpoints never receive the bearer credential.
var publicEndpoints = []string{"/auth/login", "/auth/register"}

// IsPublicEndpoint reports whether path belongs to the unauthenticated allowlist.
func IsPublicEndpoint(path string) bool {
	for _, p := range publicEndpoints {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// Navigator moves the application to another view.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// AuthTransport attaches the stored session token to outgoing requests and
// invalidates the session when the backend answers 401 or 403.
type AuthTransport struct {
	// Store supplies the token and is cleared on invalidation.
	Store SessionStore
	// Navigator receives the forced navigation to LoginPath. Optional.
	Navigator Navigator
	// Base is the underlying transport; http.DefaultTransport when nil.
	Base http.RoundTripper
	// BearerToken, when set, is attached instead of the stored token.
	BearerToken string
	// OnInvalidate runs after the store is cleared. Optional.
	OnInvalidate func()
	Logger       *slog.Logger
}

var _ http.RoundTripper = (*AuthTransport)(nil)

// RoundTrip implements http.RoundTripper.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(RequestIDHeader) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}

	next := t.base()
	if src := t.tokenSource(req); src != nil {
		next = &oauth2.Transport{Source: src, Base: next}
	}

	resp, err := next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if IsSessionInvalidatingStatus(resp.StatusCode) {
		t.invalidate(req, resp.StatusCode)
	}
	return resp, nil
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// tokenSource returns nil when the request must go out without credentials.
func (t *AuthTransport) tokenSource(req *http.Request) oauth2.TokenSource {
	if IsPublicEndpoint(req.URL.Path) {
		return nil
	}
	if t.BearerToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: t.BearerToken, TokenType: "Bearer"})
	}
	if t.Store == nil {
		return nil
	}
	token, ok := t.Store.Get(KeyToken)
	if !ok {
		return nil
	}
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
}

func (t *AuthTransport) invalidate(req *http.Request, status int) {
	log := t.logger()
	log.Warn("session invalidated by backend",
		"status", status,
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", req.Header.Get(RequestIDHeader),
	)

	if t.Store != nil {
		if err := t.Store.Clear(); err != nil {
			log.Error("failed to clear session", "error", err)
		}
	}
	if t.Navigator != nil {
		t.Navigator.Navigate(LoginPath)
	}
	if t.OnInvalidate != nil {
		t.OnInvalidate()
	}
}

func (t *AuthTransport) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return discardLogger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
