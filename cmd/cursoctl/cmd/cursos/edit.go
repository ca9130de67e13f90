package cursos

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var (
	editTitulo      string
	editDescripcion string
	editEstado      string
)

var editCmd = &cobra.Command{
	Use:         "edit <id>",
	Short:       "Edit a course",
	Long:        `Updates the given fields of a course; fields without a flag keep their current value.`,
	Args:        cobra.ExactArgs(1),
	Annotations: cmdutil.Route("/cursos/editar/{id}"),
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

		current, err := deps.Client.GetCourse(ctx, id)
		if err != nil {
			return cmdutil.Failure("Error al cargar el curso", err)
		}
		course := applyEdits(*current, cmd.Flags().Changed)
		if err := cmdutil.ValidateCourse(course); err != nil {
			return err
		}

		updated, err := deps.Client.UpdateCourse(ctx, id, course)
		if err != nil {
			return cmdutil.Failure("Error al actualizar el curso", err)
		}
		pterm.Success.Printf("Curso actualizado: %d %s (%s)\n", updated.ID, updated.Titulo, statusLabel(updated.Estado))
		deps.Router.Go("/cursos")
		return nil
	},
}

// applyEdits overlays the flags the user set on course.
func applyEdits(course sdk.Course, changed func(string) bool) sdk.Course {
	if changed("titulo") {
		course.Titulo = strings.TrimSpace(editTitulo)
	}
	if changed("descripcion") {
		course.Descripcion = strings.TrimSpace(editDescripcion)
	}
	if changed("estado") {
		course.Estado = sdk.CourseStatus(strings.ToUpper(editEstado))
	}
	return course
}

func init() {
	editCmd.Flags().StringVar(&editTitulo, "titulo", "", "New title")
	editCmd.Flags().StringVar(&editDescripcion, "descripcion", "", "New description")
	editCmd.Flags().StringVar(&editEstado, "estado", "", "New status")
}
