package cursos

import (
	"errors"
	"net/http"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:         "delete <id>",
	Short:       "Delete a course",
	Args:        cobra.ExactArgs(1),
	Annotations: cmdutil.Route("/cursos"),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cmdutil.ParseID(args[0])
		if err != nil {
			return err
		}
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}

		ok, err := cmdutil.Confirm("¿Estás seguro de que deseas eliminar este curso? Esta acción no se puede deshacer.", deleteYes, deps.Config.NonInteractive)
		if err != nil || !ok {
			return err
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		if err := deps.Client.DeleteCourse(ctx, id); err != nil {
			return deleteError(err)
		}
		pterm.Success.Println("Curso eliminado exitosamente")
		return nil
	},
}

func deleteError(err error) error {
	switch {
	case sdk.IsStatus(err, http.StatusNotFound):
		return errors.New("El curso no existe")
	case sdk.IsStatus(err, http.StatusInternalServerError):
		return errors.New("No se puede eliminar el curso porque tiene estudiantes inscritos o hay un error en el servidor")
	case sdk.IsSessionInvalidating(err):
		return errors.New("No tienes permisos para eliminar este curso")
	}
	return cmdutil.Failure("Error al eliminar el curso", err)
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
