package miscursos

import (
	"errors"
	"net/http"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var listCmd = &cobra.Command{
	Use:         "list",
	Short:       "List the courses you are enrolled in",
	Annotations: cmdutil.Route("/mis-cursos"),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		s, err := deps.Auth.RequireSession()
		if err != nil {
			return errors.New("Debes iniciar sesión")
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		all, err := deps.Client.ListEnrollments(ctx)
		if err != nil {
			return listError(err)
		}
		mine := sdk.MyEnrollments(all, s.UserID)
		if len(mine) == 0 {
			pterm.Info.Println("Aún no estás inscrito en ningún curso.")
			return nil
		}
		return printEnrollments(os.Stdout, mine)
	},
}

func listError(err error) error {
	switch {
	case sdk.IsSessionInvalidating(err):
		return errors.New("Sesión expirada. Por favor, inicia sesión nuevamente.")
	case sdk.IsStatus(err, http.StatusInternalServerError):
		return errors.New("Error en el servidor. Por favor, intenta más tarde.")
	}
	return cmdutil.Failure("Error al cargar tus cursos", err)
}
