package nav

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

func sessionStore(t *testing.T, role sdk.Role) *sdk.MemoryStore {
	t.Helper()
	store := sdk.NewMemoryStore()
	if role == "" {
		return store
	}
	require.NoError(t, store.Set(sdk.KeyToken, "abc"))
	require.NoError(t, store.Set(sdk.KeyUserID, "1"))
	require.NoError(t, store.Set(sdk.KeyUserRole, string(role)))
	return store
}

func newTestRouter(t *testing.T, store sdk.SessionStore) *Router {
	t.Helper()
	r, err := NewRouter(store, DefaultRoutes)
	require.NoError(t, err)
	return r
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		role        sdk.Role
		path        string
		wantTarget  string
		wantAllowed bool
	}{
		{name: "student blocked from users", role: sdk.RoleEstudiante, path: "/usuarios", wantTarget: "/dashboard"},
		{name: "admin opens users", role: sdk.RoleAdmin, path: "/usuarios", wantTarget: "/usuarios", wantAllowed: true},
		{name: "anonymous sent to login", path: "/usuarios", wantTarget: "/login"},
		{name: "anonymous dashboard", path: "/dashboard", wantTarget: "/login"},
		{name: "public login", path: "/login", wantTarget: "/login", wantAllowed: true},
		{name: "public register while logged in", role: sdk.RoleAdmin, path: "/register", wantTarget: "/register", wantAllowed: true},
		{name: "root redirects to login", role: sdk.RoleAdmin, path: "/", wantTarget: "/login"},
		{name: "unknown path for user", role: sdk.RoleDocente, path: "/nada", wantTarget: "/dashboard"},
		{name: "unknown path for anonymous", path: "/nada", wantTarget: "/login"},
		{name: "docente edits course", role: sdk.RoleDocente, path: "/cursos/editar/3", wantTarget: "/cursos/editar/3", wantAllowed: true},
		{name: "student cannot create course", role: sdk.RoleEstudiante, path: "/cursos/crear", wantTarget: "/dashboard"},
		{name: "student sees available courses", role: sdk.RoleEstudiante, path: "/cursos-disponibles", wantTarget: "/cursos-disponibles", wantAllowed: true},
		{name: "docente has my courses", role: sdk.RoleDocente, path: "/mis-cursos", wantTarget: "/mis-cursos", wantAllowed: true},
		{name: "admin has no my courses", role: sdk.RoleAdmin, path: "/mis-cursos", wantTarget: "/dashboard"},
		{name: "detail needs only auth", role: sdk.RoleAdmin, path: "/curso-detalle/8", wantTarget: "/curso-detalle/8", wantAllowed: true},
		{name: "trailing slash and query", role: sdk.RoleAdmin, path: "cursos/?page=2", wantTarget: "/cursos", wantAllowed: true},
		{name: "unknown stored role", role: sdk.Role("ROLE_GUEST"), path: "/cursos", wantTarget: "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, sessionStore(t, tt.role))
			d := r.Resolve(tt.path)
			assert.Equal(t, tt.wantTarget, d.Target)
			assert.Equal(t, tt.wantAllowed, d.Allowed)
			if tt.wantAllowed {
				assert.Empty(t, d.Reason)
			} else {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}

func TestRoleGuardMatchesDeclaredRoles(t *testing.T) {
	for _, route := range DefaultRoutes {
		if len(route.Roles) == 0 {
			continue
		}
		for _, role := range sdk.Roles {
			t.Run(route.Pattern+"/"+string(role), func(t *testing.T) {
				r := newTestRouter(t, sessionStore(t, role))
				d := r.Resolve(Expand(route.Pattern, "1"))

				if slices.Contains(route.Roles, role) {
					assert.True(t, d.Allowed)
				} else {
					assert.False(t, d.Allowed)
					assert.Equal(t, PathDashboard, d.Target)
				}
			})
		}
	}
}

func TestAuthenticatedWithoutRoleIsBlockedFromRoleRoutes(t *testing.T) {
	store := sdk.NewMemoryStore()
	require.NoError(t, store.Set(sdk.KeyToken, "abc"))
	require.NoError(t, store.Set(sdk.KeyUserID, "1"))
	r := newTestRouter(t, store)

	assert.True(t, r.Resolve("/dashboard").Allowed)
	d := r.Resolve("/cursos")
	assert.Equal(t, PathDashboard, d.Target)
	assert.Contains(t, d.Reason, "(none)")
}

func TestResolveParams(t *testing.T) {
	r := newTestRouter(t, sessionStore(t, sdk.RoleAdmin))

	d := r.Resolve("/usuarios/editar/42")
	assert.Equal(t, "/usuarios/editar/{id}", d.Pattern)
	assert.Equal(t, map[string]string{"id": "42"}, d.Params)

	d = r.Resolve("/usuarios/nuevo")
	assert.Equal(t, "/usuarios/nuevo", d.Pattern)
	assert.Empty(t, d.Params)

	d = r.Resolve("/nada")
	assert.Empty(t, d.Pattern)
}

func TestGuardsDoNotMutateSession(t *testing.T) {
	store := sessionStore(t, sdk.RoleEstudiante)
	before := sdk.LoadSession(store)
	r := newTestRouter(t, store)

	for _, route := range DefaultRoutes {
		r.Go(Expand(route.Pattern, "1"))
	}
	assert.Equal(t, before, sdk.LoadSession(store))
}

func TestGoTracksLocation(t *testing.T) {
	r := newTestRouter(t, sessionStore(t, sdk.RoleEstudiante))
	assert.Empty(t, r.Location())

	var seen []Decision
	r.OnNavigate(func(d Decision) { seen = append(seen, d) })

	r.Go("/cursos-disponibles")
	assert.Equal(t, "/cursos-disponibles", r.Location())

	r.Navigate("/aprobacion-cursos")
	assert.Equal(t, PathDashboard, r.Location())

	require.Len(t, seen, 2)
	assert.True(t, seen[0].Allowed)
	assert.False(t, seen[1].Allowed)
	assert.Equal(t, "/aprobacion-cursos", seen[1].Requested)
}

func TestNewRouterRejectsBadTables(t *testing.T) {
	store := sdk.NewMemoryStore()

	_, err := NewRouter(store, []Route{{Pattern: "/a"}, {Pattern: "/a"}})
	assert.ErrorContains(t, err, "duplicate")

	_, err = NewRouter(store, []Route{{Pattern: "/a", Roles: []sdk.Role{sdk.RoleAdmin}}})
	assert.ErrorContains(t, err, "without requiring authentication")
}

func TestRedirectLoopEndsAtLogin(t *testing.T) {
	r, err := NewRouter(sdk.NewMemoryStore(), []Route{
		{Pattern: "/a", Redirect: "/b"},
		{Pattern: "/b", Redirect: "/a"},
	})
	require.NoError(t, err)

	d := r.Resolve("/a")
	assert.False(t, d.Allowed)
	assert.Equal(t, PathLogin, d.Target)
}

func TestExpand(t *testing.T) {
	assert.Equal(t, "/cursos/editar/5", Expand("/cursos/editar/{id}", "5"))
	assert.Equal(t, "/cursos/editar/{id}", Expand("/cursos/editar/{id}"))
	assert.Equal(t, "/dashboard", Expand("/dashboard", "5"))
}
