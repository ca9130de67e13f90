package cursos

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var disponiblesCmd = &cobra.Command{
	Use:         "disponibles",
	Short:       "List the courses open for enrollment",
	Long:        "List the active courses, marking the ones you are already enrolled in.",
	Annotations: cmdutil.Route("/cursos-disponibles"),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		session, err := deps.Auth.RequireSession()
		if err != nil {
			return err
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		courses, err := deps.Client.AvailableCourses(ctx)
		if err != nil {
			return cmdutil.Failure("Error al cargar los cursos disponibles", err)
		}
		if len(courses) == 0 {
			pterm.Info.Println("No hay cursos disponibles en este momento.")
			return nil
		}

		var enrolled map[int64]bool
		enrollments, err := deps.Client.ListUserEnrollments(ctx, session.UserID)
		if err != nil {
			if cmdutil.SessionExpired(err) {
				return cmdutil.Failure("Error al cargar tus inscripciones", err)
			}
			pterm.Warning.Println("No se pudo verificar tus inscripciones: " + sdk.UserMessage(err))
		} else {
			enrolled = enrolledCourseIDs(enrollments)
		}

		if err := printAvailableCourses(os.Stdout, courses, enrolled); err != nil {
			return err
		}
		pterm.Info.Println("Run `cursoctl cursos inscribir <id>` to enroll.")
		return nil
	},
}

func enrolledCourseIDs(enrollments []sdk.Enrollment) map[int64]bool {
	ids := make(map[int64]bool, len(enrollments))
	for _, e := range enrollments {
		if e.Curso.ID > 0 {
			ids[e.Curso.ID] = true
		}
	}
	return ids
}

func printAvailableCourses(w io.Writer, courses []sdk.Course, enrolled map[int64]bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITULO\tINSCRITO\tDESCRIPCION")
	for _, c := range courses {
		mark := ""
		if enrolled[c.ID] {
			mark = "Inscrito"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.Titulo, mark, preview(c.Descripcion, descriptionPreviewLimit))
	}
	return tw.Flush()
}
