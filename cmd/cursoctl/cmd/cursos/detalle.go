package cursos

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
)

var detalleCmd = &cobra.Command{
	Use:         "detalle <id>",
	Short:       "Show a course",
	Args:        cobra.ExactArgs(1),
	Annotations: cmdutil.Route("/curso-detalle/{id}"),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cmdutil.ParseID(args[0])
		if err != nil {
			return err
		}
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		course, err := deps.Client.GetCourse(ctx, id)
		if err != nil {
			return cmdutil.Failure("Error al cargar el curso", err)
		}

		pterm.DefaultSection.Println(course.Titulo)
		fmt.Printf("ID:          %d\n", course.ID)
		fmt.Printf("Estado:      %s\n", statusLabel(course.Estado))
		fmt.Printf("Descripción: %s\n", course.Descripcion)
		return nil
	},
}
