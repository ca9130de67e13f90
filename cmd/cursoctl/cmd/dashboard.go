package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/nav"
)

type dashboardCard struct {
	Title       string
	Description string
	Route       string
	Command     string
}

var dashboardCards = []dashboardCard{
	{Title: "Gestión de Usuarios", Description: "Crear, editar y administrar usuarios", Route: "/usuarios", Command: "cursoctl usuarios list"},
	{Title: "Gestión de Cursos", Description: "Crear, editar y administrar cursos", Route: "/cursos", Command: "cursoctl cursos list"},
	{Title: "Aprobación de Cursos", Description: "Revisar cursos pendientes de aprobación", Route: "/aprobacion-cursos", Command: "cursoctl aprobacion pendientes"},
	{Title: "Cursos Disponibles", Description: "Explora e inscríbete en cursos", Route: "/cursos-disponibles", Command: "cursoctl cursos disponibles"},
	{Title: "Mis Cursos", Description: "Ver tus cursos inscritos", Route: "/mis-cursos", Command: "cursoctl mis-cursos list"},
}

// visibleCards keeps the cards whose view the router lets the session open.
func visibleCards(router *nav.Router) []dashboardCard {
	var cards []dashboardCard
	for _, c := range dashboardCards {
		if router.Resolve(c.Route).Allowed {
			cards = append(cards, c)
		}
	}
	return cards
}

var dashboardCmd = &cobra.Command{
	Use:         "dashboard",
	Short:       "Show the dashboard for the logged-in user",
	Annotations: cmdutil.Route(nav.PathDashboard),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		state := deps.Auth.State()

		name := state.UserName
		if name == "" {
			name = state.UserEmail
		}
		pterm.DefaultSection.Printf("Bienvenido, %s\n", name)
		pterm.Info.Printf("Rol: %s\n", state.Role.Label())

		cards := visibleCards(deps.Router)
		if len(cards) == 0 {
			pterm.Warning.Println("No hay secciones disponibles para tu rol.")
			return nil
		}
		table := pterm.TableData{{"SECCIÓN", "DESCRIPCIÓN", "COMANDO"}}
		for _, c := range cards {
			table = append(table, []string{c.Title, c.Description, c.Command})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(table).Render()
	},
}

