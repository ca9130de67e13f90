package cursos

import (
	"errors"
	"net/http"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var inscribirCmd = &cobra.Command{
	Use:         "inscribir <curso-id>",
	Short:       "Enroll the logged-in user in a course",
	Args:        cobra.ExactArgs(1),
	Annotations: cmdutil.Route("/cursos-disponibles"),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID, err := cmdutil.ParseID(args[0])
		if err != nil {
			return err
		}
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		s, err := deps.Auth.RequireSession()
		if err != nil {
			deps.Router.Go(sdk.LoginPath)
			return errors.New("Tu sesión ha expirado. Por favor, inicia sesión nuevamente.")
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		if _, err := deps.Client.Enroll(ctx, s.UserID, courseID); err != nil {
			return enrollError(err)
		}
		pterm.Success.Println("¡Te has inscrito exitosamente al curso!")
		return nil
	},
}

func enrollError(err error) error {
	switch {
	case sdk.IsStatus(err, http.StatusConflict):
		return errors.New("Ya estás inscrito en este curso")
	case sdk.IsSessionInvalidating(err):
		return errors.New("Sesión expirada. Por favor, inicia sesión nuevamente.")
	case sdk.IsStatus(err, http.StatusBadRequest):
		return errors.New("Datos inválidos. Verifica tu información.")
	case sdk.IsStatus(err, http.StatusInternalServerError):
		return errors.New("Error en el servidor. Por favor, intenta más tarde.")
	}
	return cmdutil.Failure("Error al inscribirse al curso", err)
}
