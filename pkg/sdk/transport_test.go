package sdk_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headerRecorder captures the headers of every request it serves.
type headerRecorder struct {
	mu      sync.Mutex
	headers map[string]http.Header
}

func (r *headerRecorder) record(req *http.Request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.headers == nil {
		r.headers = make(map[string]http.Header)
	}
	r.headers[req.URL.Path] = req.Header.Clone()
}

func (r *headerRecorder) get(path string) http.Header {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.headers[path]
}

func TestAuthTransportAttachesBearer(t *testing.T) {
	rec := &headerRecorder{}
	mux := http.NewServeMux()
	mux.HandleFunc("/cursos", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(w, http.StatusOK, []sdk.Course{})
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(w, http.StatusOK, sdk.AuthResponse{Error: "Credenciales inválidas"})
	})
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(w, http.StatusOK, sdk.AuthResponse{Message: "ok"})
	})

	stack := newTestStack(t, mux)
	require.NoError(t, stack.store.Set(sdk.KeyToken, "abc"))
	ctx := context.Background()

	_, err := stack.client.ListCourses(ctx)
	require.NoError(t, err)
	_, err = stack.client.Login(ctx, sdk.LoginRequest{Email: "a@example.com", Password: "x"})
	require.NoError(t, err)
	_, err = stack.client.Register(ctx, sdk.RegisterRequest{Email: "a@example.com", Password: "xxxx", Nombre: "Ana", Role: sdk.RoleEstudiante})
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc", rec.get("/cursos").Get("Authorization"))
	assert.Empty(t, rec.get("/auth/login").Get("Authorization"))
	assert.Empty(t, rec.get("/auth/register").Get("Authorization"))
	assert.NotEmpty(t, rec.get("/cursos").Get(sdk.RequestIDHeader))
}

func TestAuthTransportWithoutToken(t *testing.T) {
	rec := &headerRecorder{}
	stack := newTestStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(w, http.StatusOK, []sdk.Course{})
	}))

	_, err := stack.client.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.get("/cursos").Get("Authorization"))
}

func TestAuthTransportBearerOverride(t *testing.T) {
	rec := &headerRecorder{}
	server := newTestStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		writeJSON(w, http.StatusOK, []sdk.User{})
	})).server

	store := sdk.NewMemoryStore()
	require.NoError(t, store.Set(sdk.KeyToken, "stored"))
	client := sdk.NewClient(server.URL, sdk.WithHTTPClient(&http.Client{
		Transport: &sdk.AuthTransport{Store: store, BearerToken: "ephemeral"},
	}))

	_, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer ephemeral", rec.get("/usuarios").Get("Authorization"))
}

func TestAuthTransportInvalidatesSession(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			stack := newTestStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, status, map[string]string{"message": "denied"})
			}))
			for _, key := range sdk.SessionKeys {
				require.NoError(t, stack.store.Set(key, "1"))
			}
			require.NoError(t, stack.store.Set(sdk.KeyToken, "abc"))
			stack.auth.Reload()
			require.True(t, stack.auth.State().Authenticated)

			invalidated := 0
			stack.auth.OnChange(func(sdk.AuthState) { invalidated++ })

			_, err := stack.client.ListCourses(context.Background())
			require.Error(t, err)

			assert.True(t, sdk.IsStatus(err, status))
			assert.True(t, sdk.IsSessionInvalidating(err))
			assert.Empty(t, storedKeys(stack.store))
			assert.Equal(t, sdk.LoginPath, stack.nav.last())
			assert.False(t, stack.auth.State().Authenticated)
			assert.Equal(t, 1, invalidated)
		})
	}
}

func TestAuthTransportLeavesSessionOnOtherErrors(t *testing.T) {
	stack := newTestStack(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{})
	}))
	require.NoError(t, stack.store.Set(sdk.KeyToken, "abc"))

	_, err := stack.client.GetCourse(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, sdk.IsStatus(err, http.StatusNotFound))

	token, ok := stack.store.Get(sdk.KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
	assert.Empty(t, stack.nav.last())
}

func TestIsPublicEndpoint(t *testing.T) {
	assert.True(t, sdk.IsPublicEndpoint("/auth/login"))
	assert.True(t, sdk.IsPublicEndpoint("/api/auth/register"))
	assert.False(t, sdk.IsPublicEndpoint("/usuarios"))
	assert.False(t, sdk.IsPublicEndpoint("/auth/logout"))
}
