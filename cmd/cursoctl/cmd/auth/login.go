package auth

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/nav"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to Curso Online",
	Long: `Logs in with email and password and stores the session.

Missing credentials are prompted for unless --non-interactive is set. The
session role is taken from the login response, then from the token, then
from the user directory, and defaults to ESTUDIANTE.`,
	Annotations: cmdutil.Route(nav.PathLogin),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		ni := deps.Config.NonInteractive

		email, err := cmdutil.Prompt(loginEmail, "Email", "email", ni, false)
		if err != nil {
			return err
		}
		password, err := cmdutil.Prompt(loginPassword, "Contraseña", "password", ni, true)
		if err != nil {
			return err
		}
		if err := cmdutil.ValidateLogin(email, password); err != nil {
			return err
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		result, err := deps.Auth.Login(ctx, email, password)
		if err != nil {
			if sdk.IsLoginRejected(err) {
				return errors.New("Error al iniciar sesión. Por favor, verifica tus credenciales.")
			}
			return cmdutil.Failure("login failed", err)
		}
		if result.Token == "" {
			msg := result.Error
			if msg == "" {
				msg = result.Message
			}
			if msg == "" {
				msg = "el servidor no devolvió un token"
			}
			return errors.New(msg)
		}

		state := deps.Auth.State()
		pterm.Success.Printf("Sesión iniciada como %s (%s)\n", state.UserEmail, state.Role.Label())
		deps.Config.ClientProvider.Logger().Debug("role resolved", "role", result.Role, "source", result.RoleSource)

		deps.Router.Go(nav.PathDashboard)
		pterm.Info.Println("Run `cursoctl dashboard` to see your sections.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}
