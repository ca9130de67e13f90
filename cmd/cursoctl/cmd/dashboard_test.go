package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/nav"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

func cardTitles(t *testing.T, role sdk.Role) []string {
	t.Helper()
	store := sdk.NewMemoryStore()
	require.NoError(t, store.Set(sdk.KeyToken, "abc"))
	require.NoError(t, store.Set(sdk.KeyUserID, "1"))
	require.NoError(t, store.Set(sdk.KeyUserRole, string(role)))
	router, err := nav.NewRouter(store, nav.DefaultRoutes)
	require.NoError(t, err)

	var titles []string
	for _, c := range visibleCards(router) {
		titles = append(titles, c.Title)
	}
	return titles
}

func TestVisibleCardsFollowRoles(t *testing.T) {
	assert.Equal(t, []string{"Gestión de Usuarios", "Gestión de Cursos", "Aprobación de Cursos"}, cardTitles(t, sdk.RoleAdmin))
	assert.Equal(t, []string{"Gestión de Cursos", "Mis Cursos"}, cardTitles(t, sdk.RoleDocente))
	assert.Equal(t, []string{"Cursos Disponibles", "Mis Cursos"}, cardTitles(t, sdk.RoleEstudiante))
}

func TestVisibleCardsWithoutSession(t *testing.T) {
	router, err := nav.NewRouter(sdk.NewMemoryStore(), nav.DefaultRoutes)
	require.NoError(t, err)
	assert.Empty(t, visibleCards(router))
}

func TestEveryCardHasARoute(t *testing.T) {
	router, err := nav.NewRouter(sdk.NewMemoryStore(), nav.DefaultRoutes)
	require.NoError(t, err)
	for _, c := range dashboardCards {
		_, ok := router.Route(c.Route)
		assert.True(t, ok, c.Route)
	}
}
