package cmdutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/nav"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, raw := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := ParseID(raw)
		assert.Error(t, err, raw)
	}
}

func TestOpenRunsGuards(t *testing.T) {
	store := sdk.NewMemoryStore()
	require.NoError(t, store.Set(sdk.KeyToken, "abc"))
	require.NoError(t, store.Set(sdk.KeyUserID, "4"))
	require.NoError(t, store.Set(sdk.KeyUserRole, string(sdk.RoleEstudiante)))
	router, err := nav.NewRouter(store, nav.DefaultRoutes)
	require.NoError(t, err)

	edit := &cobra.Command{Use: "edit", Annotations: Route("/cursos/editar/{id}")}
	d, err := Open(edit, router, []string{"9"})
	var blocked *BlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, "/cursos/editar/9", d.Requested)
	assert.Equal(t, nav.PathDashboard, router.Location())
	assert.Contains(t, err.Error(), "redirected to /dashboard")
	assert.NotContains(t, err.Error(), "auth login")

	detail := &cobra.Command{Use: "detalle", Annotations: Route("/curso-detalle/{id}")}
	d, err = Open(detail, router, []string{"9"})
	require.NoError(t, err)
	assert.Equal(t, "9", d.Params["id"])

	unbound := &cobra.Command{Use: "logout"}
	_, err = Open(unbound, router, nil)
	assert.NoError(t, err)
}

func TestBlockedErrorSuggestsLogin(t *testing.T) {
	err := &BlockedError{Decision: nav.Decision{Requested: "/cursos", Target: nav.PathLogin, Reason: "not logged in"}}
	assert.Contains(t, err.Error(), "cursoctl auth login")
}

func TestFailureShowsUserMessage(t *testing.T) {
	apiErr := &sdk.APIError{Status: http.StatusNotFound, UserMessage: "Recurso no encontrado"}
	err := Failure("failed to get course", fmt.Errorf("wrapped: %w", apiErr))

	assert.Equal(t, "failed to get course: Recurso no encontrado", err.Error())
	assert.True(t, sdk.IsStatus(err, http.StatusNotFound))

	plain := Failure("failed to list", errors.New("boom"))
	assert.Equal(t, "failed to list: boom", plain.Error())
}

func TestSessionExpired(t *testing.T) {
	assert.True(t, SessionExpired(&sdk.APIError{Status: http.StatusForbidden}))
	assert.True(t, SessionExpired(sdk.ErrNotLoggedIn))
	assert.False(t, SessionExpired(&sdk.APIError{Status: http.StatusInternalServerError}))
}
