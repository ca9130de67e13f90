package cursos

import (
	"errors"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var (
	listFilter string
	listEstado string
	listTitulo string
)

var listCmd = &cobra.Command{
	Use:         "list",
	Short:       "List all courses",
	Long:        `Lists every course. The list can be narrowed with a bexpr expression over id, titulo, descripcion and estado.`,
	Annotations: cmdutil.Route("/cursos"),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := buildListFilter(listFilter, listEstado, listTitulo)
		if err != nil {
			return err
		}
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		courses, err := deps.Client.ListCourses(ctx)
		if err != nil {
			if cmdutil.SessionExpired(err) {
				return errors.New("Sesión expirada. Por favor, inicia sesión nuevamente.")
			}
			return cmdutil.Failure("Error al cargar los cursos", err)
		}
		courses, err = sdk.FilterCourses(courses, expr)
		if err != nil {
			return err
		}

		if len(courses) == 0 {
			pterm.Info.Println("No hay cursos registrados.")
			return nil
		}
		return printCourses(os.Stdout, courses)
	},
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "bexpr filter expression (e.g. estado == \"ACTIVO\")")
	listCmd.Flags().StringVar(&listEstado, "estado", "", "Only courses with this status (PENDIENTE, ACTIVO, ...)")
	listCmd.Flags().StringVar(&listTitulo, "titulo", "", "Only courses whose title contains this text")
}
