package usuarios

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var createCmd = &cobra.Command{
	Use:         "create",
	Short:       "Create a user",
	Annotations: cmdutil.Route("/usuarios/nuevo"),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		ni := deps.Config.NonInteractive

		in := sdk.UserInput{Rol: userRol, Telefono: userTelefono}
		if in.Rol == "" {
			in.Rol = sdk.RoleEstudiante.Bare()
		}
		if in.Nombre, err = cmdutil.Prompt(userNombre, "Nombre", "nombre", ni, false); err != nil {
			return err
		}
		if in.Email, err = cmdutil.Prompt(userEmail, "Email", "email", ni, false); err != nil {
			return err
		}
		if in.Password, err = cmdutil.Prompt(userPassword, "Contraseña", "password", ni, true); err != nil {
			return err
		}
		if err := cmdutil.ValidateUser(in, true); err != nil {
			return err
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		resp, err := deps.Client.CreateUser(ctx, in)
		if err != nil {
			return cmdutil.Failure("Error al crear el usuario", err)
		}
		if resp.Error != "" {
			return errors.New(resp.Error)
		}
		pterm.Success.Printf("Usuario creado: %s\n", in.Email)
		deps.Router.Go("/usuarios")
		return nil
	},
}
