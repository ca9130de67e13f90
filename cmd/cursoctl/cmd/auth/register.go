package auth

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/nav"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var (
	registerNombre   string
	registerEmail    string
	registerPassword string
	registerConfirm  string
	registerRole     string
)

var registerCmd = &cobra.Command{
	Use:         "register",
	Short:       "Create a Curso Online account",
	Long:        `Creates an account. The stored session is left untouched; log in afterwards.`,
	Annotations: cmdutil.Route(nav.PathRegister),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		ni := deps.Config.NonInteractive

		nombre, err := cmdutil.Prompt(registerNombre, "Nombre", "nombre", ni, false)
		if err != nil {
			return err
		}
		email, err := cmdutil.Prompt(registerEmail, "Email", "email", ni, false)
		if err != nil {
			return err
		}
		password, err := cmdutil.Prompt(registerPassword, "Contraseña", "password", ni, true)
		if err != nil {
			return err
		}
		confirm, err := cmdutil.Prompt(registerConfirm, "Confirmar contraseña", "confirm-password", ni, true)
		if err != nil {
			return err
		}
		if err := cmdutil.ValidateRegistration(nombre, email, password, confirm); err != nil {
			return err
		}
		role, ok := sdk.NormalizeRole(registerRole)
		if !ok {
			return fmt.Errorf("unknown role %q (expected one of ESTUDIANTE, DOCENTE, ADMIN)", registerRole)
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		resp, err := deps.Auth.Register(ctx, sdk.RegisterRequest{
			Email:    email,
			Password: password,
			Nombre:   nombre,
			Role:     role,
		})
		if err != nil {
			return cmdutil.Failure("Error al registrar usuario", err)
		}
		if resp.Error != "" {
			return errors.New(resp.Error)
		}

		msg := resp.Message
		if msg == "" {
			msg = "Usuario registrado"
		}
		pterm.Success.Println(msg)
		deps.Router.Go(nav.PathLogin)
		pterm.Info.Println("Run `cursoctl auth login` to start a session.")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerNombre, "nombre", "", "Full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (minimum 4 characters)")
	registerCmd.Flags().StringVar(&registerConfirm, "confirm-password", "", "Password confirmation")
	registerCmd.Flags().StringVar(&registerRole, "role", string(sdk.RoleEstudiante), "Account role: ESTUDIANTE, DOCENTE or ADMIN")
}
