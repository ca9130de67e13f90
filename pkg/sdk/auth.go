package sdk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
)

// Login calls POST /auth/login. It does not touch any session; see AuthManager.Login.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register calls POST /auth/register.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RoleSource names the step of the login pipeline that produced the role.
type RoleSource string

const (
	RoleFromResponse  RoleSource = "response"
	RoleFromToken     RoleSource = "token"
	RoleFromDirectory RoleSource = "directory"
	RoleFromDefault   RoleSource = "default"
)

// DefaultRole is assigned when no other source yields a role.
const DefaultRole = RoleEstudiante

// AuthState is a snapshot of the current identity.
type AuthState struct {
	Authenticated bool
	UserID        int64
	UserName      string
	UserEmail     string
	Role          Role
}

func stateFromSession(s Session) AuthState {
	return AuthState{
		Authenticated: s.IsAuthenticated(),
		UserID:        s.UserID,
		UserName:      s.UserName,
		UserEmail:     s.UserEmail,
		Role:          s.Role,
	}
}

// LoginResult is what Login reports to the caller. Token is empty when the
// backend refused the credentials; Message and Error then carry its text.
type LoginResult struct {
	Token      string
	Message    string
	Error      string
	UserID     int64
	Role       Role
	RoleSource RoleSource
}

// AuthManager owns the session: it is the only writer of the SessionStore
// apart from the invalidation performed by AuthTransport.
type AuthManager struct {
	client *Client
	store  SessionStore
	nav    Navigator
	logger *slog.Logger

	mu        sync.RWMutex
	state     AuthState
	listeners []func(AuthState)
}

// AuthOption configures an AuthManager.
type AuthOption func(*AuthManager)

// WithNavigator sets where Logout sends the user.
func WithNavigator(nav Navigator) AuthOption {
	return func(m *AuthManager) {
		m.nav = nav
	}
}

// WithAuthLogger sets the logger used for pipeline diagnostics.
func WithAuthLogger(logger *slog.Logger) AuthOption {
	return func(m *AuthManager) {
		m.logger = logger
	}
}

// NewAuthManager creates a manager whose in-memory state starts from store.
func NewAuthManager(client *Client, store SessionStore, opts ...AuthOption) *AuthManager {
	m := &AuthManager{
		client: client,
		store:  store,
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.state = stateFromSession(LoadSession(store))
	return m
}

// identity is the intermediate result of the identity step.
type identity struct {
	userID    int64
	userName  string
	userEmail string
}

// resolvedRole is the intermediate result of the role step.
type resolvedRole struct {
	role   Role
	source RoleSource
}

// Login authenticates against the backend and, when a token is returned,
// populates the session. Every resolved field is stored before Login returns.
func (m *AuthManager) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	resp, err := m.client.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return &LoginResult{Message: resp.Message, Error: resp.Error}, nil
	}

	if err := m.startSession(resp.Token); err != nil {
		return nil, err
	}

	claims, _ := DecodeClaims(resp.Token)
	id := resolveIdentity(resp, claims)

	role, err := m.resolveRole(ctx, resp, claims, &id)
	if err != nil {
		m.Reload()
		return nil, err
	}

	if err := m.writeIdentity(id, role.role); err != nil {
		return nil, err
	}
	m.Reload()

	m.logger.Info("login succeeded", "user_id", id.userID, "role", role.role, "role_source", role.source)
	return &LoginResult{
		Token:      resp.Token,
		Message:    resp.Message,
		UserID:     id.userID,
		Role:       role.role,
		RoleSource: role.source,
	}, nil
}

// startSession replaces whatever session was stored with the new token.
func (m *AuthManager) startSession(token string) error {
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	if err := m.store.Set(KeyToken, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

func resolveIdentity(resp *AuthResponse, claims *TokenClaims) identity {
	id := identity{
		userID:    resp.UserID,
		userName:  resp.UserName,
		userEmail: resp.UserEmail,
	}
	if claims != nil {
		if id.userID <= 0 {
			id.userID = claims.UserID
		}
		if id.userEmail == "" {
			id.userEmail = claims.EmailOrSubject()
		}
	}
	return id
}

// resolveRole walks the role sources in priority order. The directory is also
// consulted when the user id is still unknown, to back-fill it.
func (m *AuthManager) resolveRole(ctx context.Context, resp *AuthResponse, claims *TokenClaims, id *identity) (resolvedRole, error) {
	var resolved resolvedRole
	if role, ok := NormalizeRole(resp.UserRole); ok {
		resolved = resolvedRole{role: role, source: RoleFromResponse}
	} else if claims != nil {
		if role, ok := NormalizeRole(claims.Role); ok {
			resolved = resolvedRole{role: role, source: RoleFromToken}
		}
	}

	if resolved.role == "" || id.userID <= 0 {
		user, err := m.lookupUser(ctx, id.userEmail)
		if err != nil {
			return resolvedRole{}, err
		}
		if user != nil {
			if id.userID <= 0 {
				id.userID = user.ID
			}
			if id.userName == "" {
				id.userName = user.Nombre
			}
			if resolved.role == "" && user.Rol.Valid() {
				resolved = resolvedRole{role: user.Rol, source: RoleFromDirectory}
			}
		}
	}

	if resolved.role == "" {
		resolved = resolvedRole{role: DefaultRole, source: RoleFromDefault}
	}
	return resolved, nil
}

// lookupUser finds the user with the given email in the user directory.
// Only session-invalidating failures are returned; anything else is logged
// and treated as "not found".
func (m *AuthManager) lookupUser(ctx context.Context, email string) (*User, error) {
	if email == "" {
		return nil, nil
	}
	users, err := m.client.ListUsers(ctx)
	if err != nil {
		if IsSessionInvalidating(err) {
			return nil, fmt.Errorf("user lookup: %w", err)
		}
		m.logger.Warn("user lookup failed, continuing", "error", err)
		return nil, nil
	}
	user, ok := FindUserByEmail(users, email)
	if !ok {
		m.logger.Debug("no user matches login email", "email", email)
		return nil, nil
	}
	return user, nil
}

func (m *AuthManager) writeIdentity(id identity, role Role) error {
	values := []struct{ key, value string }{
		{KeyUserEmail, id.userEmail},
		{KeyUserName, id.userName},
		{KeyUserRole, string(role)},
	}
	if id.userID > 0 {
		values = append(values, struct{ key, value string }{KeyUserID, strconv.FormatInt(id.userID, 10)})
	}
	for _, kv := range values {
		if kv.value == "" {
			continue
		}
		if err := m.store.Set(kv.key, kv.value); err != nil {
			return fmt.Errorf("store %s: %w", kv.key, err)
		}
	}
	return nil
}

// Logout clears the session and navigates to the login view. The in-memory
// state is reset and the navigation happens even when the store fails to clear.
func (m *AuthManager) Logout() error {
	err := m.store.Clear()
	m.Reload()
	if m.nav != nil {
		m.nav.Navigate(LoginPath)
	}
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Register creates an account. The session is never modified.
func (m *AuthManager) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return m.client.Register(ctx, req)
}

// CheckAuthentication reports whether a token and a user id are stored.
func (m *AuthManager) CheckAuthentication() bool {
	return LoadSession(m.store).IsAuthenticated()
}

// Token returns the stored token.
func (m *AuthManager) Token() (string, bool) {
	return m.store.Get(KeyToken)
}

// CurrentRole returns the stored role, if any.
func (m *AuthManager) CurrentRole() (Role, bool) {
	role := LoadSession(m.store).Role
	return role, role != ""
}

// HasRole reports whether the stored role is one of roles.
func (m *AuthManager) HasRole(roles ...Role) bool {
	current, ok := m.CurrentRole()
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == current {
			return true
		}
	}
	return false
}

func (m *AuthManager) IsAdmin() bool      { return m.HasRole(RoleAdmin) }
func (m *AuthManager) IsDocente() bool    { return m.HasRole(RoleDocente) }
func (m *AuthManager) IsEstudiante() bool { return m.HasRole(RoleEstudiante) }

// RequireSession returns the current session or ErrNotLoggedIn.
func (m *AuthManager) RequireSession() (Session, error) {
	s := LoadSession(m.store)
	if !s.IsAuthenticated() {
		return s, ErrNotLoggedIn
	}
	return s, nil
}

// State returns the in-memory snapshot.
func (m *AuthManager) State() AuthState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// OnChange registers fn to receive every new state.
func (m *AuthManager) OnChange(fn func(AuthState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Reload re-reads the store into the in-memory state and notifies listeners
// when it changed. AuthTransport's OnInvalidate hook is wired to it.
func (m *AuthManager) Reload() {
	next := stateFromSession(LoadSession(m.store))

	m.mu.Lock()
	changed := next != m.state
	m.state = next
	listeners := append([]func(AuthState){}, m.listeners...)
	m.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range listeners {
		fn(next)
	}
}

// IsLoginRejected reports whether err is the backend refusing credentials.
func IsLoginRejected(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusBadRequest)
}
