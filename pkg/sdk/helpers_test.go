package sdk_test

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
	"github.com/stretchr/testify/require"
)

// makeToken builds an unsigned three-segment token around payload.
func makeToken(t *testing.T, payload map[string]any) string {
	t.Helper()
	header, err := json.Marshal(map[string]any{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(body) + ".c2lnbmF0dXJl"
}

// recordingNavigator remembers every navigation.
type recordingNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
}

func (n *recordingNavigator) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

type testStack struct {
	server *httptest.Server
	store  *sdk.MemoryStore
	nav    *recordingNavigator
	client *sdk.Client
	auth   *sdk.AuthManager
}

// newTestStack wires a client, transport and auth manager against handler.
func newTestStack(t *testing.T, handler http.Handler) *testStack {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := sdk.NewMemoryStore()
	nav := &recordingNavigator{}
	stack := &testStack{server: server, store: store, nav: nav}

	transport := &sdk.AuthTransport{Store: store, Navigator: nav}
	stack.client = sdk.NewClient(server.URL, sdk.WithHTTPClient(&http.Client{Transport: transport}))
	stack.auth = sdk.NewAuthManager(stack.client, store, sdk.WithNavigator(nav))
	transport.OnInvalidate = stack.auth.Reload
	return stack
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// storedKeys returns every session key present in store.
func storedKeys(store sdk.SessionStore) []string {
	var keys []string
	for _, k := range sdk.SessionKeys {
		if _, ok := store.Get(k); ok {
			keys = append(keys, k)
		}
	}
	return keys
}
