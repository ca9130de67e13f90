package cursos

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var (
	createTitulo      string
	createDescripcion string
	createEstado      string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a course",
	Long: `Creates a course. Without --estado the course is submitted as PENDIENTE
and waits for an administrator's approval.`,
	Annotations: cmdutil.Route("/cursos/crear"),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		ni := deps.Config.NonInteractive

		titulo, err := cmdutil.Prompt(createTitulo, "Título", "titulo", ni, false)
		if err != nil {
			return err
		}
		descripcion, err := cmdutil.Prompt(createDescripcion, "Descripción", "descripcion", ni, false)
		if err != nil {
			return err
		}
		course := sdk.Course{
			Titulo:      strings.TrimSpace(titulo),
			Descripcion: strings.TrimSpace(descripcion),
			Estado:      sdk.CourseStatus(strings.ToUpper(createEstado)),
		}
		if err := cmdutil.ValidateCourse(course); err != nil {
			return err
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		created, err := deps.Client.CreateCourse(ctx, course)
		if err != nil {
			return cmdutil.Failure("Error al crear el curso", err)
		}
		pterm.Success.Printf("Curso creado: %d %s\n", created.ID, created.Titulo)
		fmt.Printf("Estado: %s\n", statusLabel(created.Estado))
		deps.Router.Go("/cursos")
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitulo, "titulo", "", "Course title (minimum 3 characters)")
	createCmd.Flags().StringVar(&createDescripcion, "descripcion", "", "Course description (minimum 10 characters)")
	createCmd.Flags().StringVar(&createEstado, "estado", "", "Initial status (default PENDIENTE)")
}
