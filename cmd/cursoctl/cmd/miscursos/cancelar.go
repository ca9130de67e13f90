package miscursos

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var cancelarYes bool

var cancelarCmd = &cobra.Command{
	Use:         "cancelar <inscripcion-id>",
	Short:       "Cancel one of your enrollments",
	Long:        `Cancels an enrollment by its id, as shown in the INSCRIPCION column of 'mis-cursos list'.`,
	Args:        cobra.ExactArgs(1),
	Annotations: cmdutil.Route("/mis-cursos"),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id < 0 {
			return fmt.Errorf("invalid enrollment id %q", args[0])
		}
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		// Id 0 is refused by the SDK without a request, so there is nothing to confirm.
		if id != 0 {
			ok, err := cmdutil.Confirm("¿Estás seguro de que deseas cancelar esta inscripción? Esta acción se reflejará en el servidor.", cancelarYes, deps.Config.NonInteractive)
			if err != nil || !ok {
				return err
			}
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		if err := deps.Client.CancelEnrollment(ctx, id); err != nil {
			return cancelError(err)
		}
		pterm.Success.Println("Inscripción cancelada exitosamente en el servidor")
		return nil
	},
}

func cancelError(err error) error {
	switch {
	case errors.Is(err, sdk.ErrEnrollmentIDMissing):
		return errors.New("No se puede cancelar: ID de inscripción no disponible.")
	case sdk.IsStatus(err, http.StatusNotFound):
		return errors.New("La inscripción no existe en el servidor")
	case sdk.IsStatus(err, http.StatusInternalServerError):
		return errors.New("Error en el servidor. Por favor, intenta más tarde.")
	case sdk.IsSessionInvalidating(err):
		return errors.New("No tienes permisos para cancelar esta inscripción")
	}
	return cmdutil.Failure("Error al cancelar la inscripción en el servidor", err)
}

func init() {
	cancelarCmd.Flags().BoolVarP(&cancelarYes, "yes", "y", false, "Skip the confirmation prompt")
}
