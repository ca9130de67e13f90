package nav

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/go-chi/chi/v5"

	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

//go:embed model.conf
var roleModelContent string

// maxHops bounds redirect chains such as unknown path -> /dashboard -> /login.
const maxHops = 4

// Decision is the outcome of running the guards for one navigation.
type Decision struct {
	// Requested is the normalized path that was asked for.
	Requested string
	// Pattern is the route pattern Requested matched, empty when unknown.
	Pattern string
	// Target is where the navigation ends up after redirects.
	Target string
	// Allowed is true when Target is the requested view itself.
	Allowed bool
	// Reason explains the first redirect, empty when allowed.
	Reason string
	// Params holds the path parameters of Requested (e.g. id).
	Params map[string]string
}

// Router evaluates the authentication and role guards over the session store
// and tracks the current location. Guards never modify the store.
type Router struct {
	store    sdk.SessionStore
	mux      *chi.Mux
	routes   map[string]Route
	enforcer *casbin.SyncedEnforcer
	logger   *slog.Logger

	mu        sync.Mutex
	location  string
	observers []func(Decision)
}

// Ensure Router implements sdk.Navigator at compile time.
var _ sdk.Navigator = (*Router)(nil)

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger for navigation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// NewRouter builds a router for routes. Each role of a route becomes one
// p, role, pattern policy of the role guard.
func NewRouter(store sdk.SessionStore, routes []Route, opts ...Option) (*Router, error) {
	m, err := model.NewModelFromString(roleModelContent)
	if err != nil {
		return nil, fmt.Errorf("parse role model: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create role enforcer: %w", err)
	}

	r := &Router{
		store:    store,
		mux:      chi.NewRouter(),
		routes:   make(map[string]Route, len(routes)),
		enforcer: enforcer,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	for _, route := range routes {
		if _, dup := r.routes[route.Pattern]; dup {
			return nil, fmt.Errorf("duplicate route %s", route.Pattern)
		}
		if len(route.Roles) > 0 && !route.Auth {
			return nil, fmt.Errorf("route %s declares roles without requiring authentication", route.Pattern)
		}
		r.routes[route.Pattern] = route
		r.mux.Get(route.Pattern, noop)

		for _, role := range route.Roles {
			if _, err := enforcer.AddPolicy(string(role), route.Pattern); err != nil {
				return nil, fmt.Errorf("add policy %s %s: %w", role, route.Pattern, err)
			}
		}
	}
	return r, nil
}

// Resolve runs the guards for path without navigating.
func (r *Router) Resolve(target string) Decision {
	requested := normalizePath(target)
	d := Decision{Requested: requested, Target: requested}

	current := requested
	for hop := 0; hop < maxHops; hop++ {
		pattern, params := r.match(current)
		if hop == 0 {
			d.Pattern = pattern
			d.Params = params
		}

		next, reason := r.guard(current, pattern)
		if next == "" {
			d.Target = current
			d.Allowed = hop == 0
			return d
		}
		if d.Reason == "" {
			d.Reason = reason
		}
		current = next
	}

	// A redirect loop means the table is broken; the login view is always reachable.
	d.Target = PathLogin
	return d
}

// guard returns the redirect for path, or "" when path may be shown.
func (r *Router) guard(p, pattern string) (string, string) {
	if pattern == "" {
		return FallbackPath, fmt.Sprintf("no view at %s", p)
	}
	route := r.routes[pattern]
	if route.Redirect != "" {
		return route.Redirect, fmt.Sprintf("%s redirects to %s", pattern, route.Redirect)
	}
	if !route.Auth {
		return "", ""
	}

	s := sdk.LoadSession(r.store)
	if !s.IsAuthenticated() {
		return PathLogin, "not logged in"
	}
	if len(route.Roles) == 0 {
		return "", ""
	}

	ok, err := r.enforcer.Enforce(string(s.Role), pattern)
	if err != nil {
		r.logger.Error("role guard evaluation failed", "pattern", pattern, "error", err)
		ok = false
	}
	if !ok {
		return PathDashboard, fmt.Sprintf("role %s may not open %s", roleName(s.Role), pattern)
	}
	return "", ""
}

func (r *Router) match(p string) (string, map[string]string) {
	rctx := chi.NewRouteContext()
	pattern := r.mux.Find(rctx, http.MethodGet, p)
	if pattern == "" {
		return "", nil
	}
	params := make(map[string]string, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		params[key] = rctx.URLParams.Values[i]
	}
	return pattern, params
}

// Go resolves path, moves the current location to the decision's target
// and notifies observers.
func (r *Router) Go(target string) Decision {
	d := r.Resolve(target)

	r.mu.Lock()
	r.location = d.Target
	observers := append([]func(Decision){}, r.observers...)
	r.mu.Unlock()

	if d.Allowed {
		r.logger.Debug("navigated", "path", d.Target)
	} else {
		r.logger.Debug("navigation redirected", "requested", d.Requested, "target", d.Target, "reason", d.Reason)
	}
	for _, fn := range observers {
		fn(d)
	}
	return d
}

// Navigate implements sdk.Navigator.
func (r *Router) Navigate(target string) {
	r.Go(target)
}

// Location returns the current view path, empty before the first navigation.
func (r *Router) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.location
}

// OnNavigate registers fn to receive every navigation decision.
func (r *Router) OnNavigate(fn func(Decision)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}

// Route returns the table entry for pattern.
func (r *Router) Route(pattern string) (Route, bool) {
	route, ok := r.routes[pattern]
	return route, ok
}

// Expand substitutes {name} placeholders of pattern with positional args.
// Placeholders without a matching arg are left in place.
func Expand(pattern string, args ...string) string {
	segments := strings.Split(pattern, "/")
	next := 0
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") && next < len(args) {
			segments[i] = args[next]
			next++
		}
	}
	return strings.Join(segments, "/")
}

func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func roleName(role sdk.Role) string {
	if role == "" {
		return "(none)"
	}
	return string(role)
}
