package aprobacion

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
)

var pendientesCmd = &cobra.Command{
	Use:         "pendientes",
	Short:       "List the courses pending approval",
	Annotations: cmdutil.Route(route),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		courses, err := deps.Client.ListPendingCourses(ctx)
		if err != nil {
			return cmdutil.Failure("Error al cargar los cursos pendientes", err)
		}
		if len(courses) == 0 {
			pterm.Success.Println("No hay cursos pendientes de aprobación.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITULO\tDESCRIPCION")
		for _, c := range courses {
			fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Titulo, c.Descripcion)
		}
		return w.Flush()
	},
}
