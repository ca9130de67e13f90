package usuarios

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
)

var editCmd = &cobra.Command{
	Use:         "edit <id>",
	Short:       "Edit a user",
	Long:        `Updates the given fields of a user. Without --password the current password is kept.`,
	Args:        cobra.ExactArgs(1),
	Annotations: cmdutil.Route("/usuarios/editar/{id}"),
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

		current, err := deps.Client.GetUser(ctx, id)
		if err != nil {
			return cmdutil.Failure("Error al cargar el usuario", err)
		}
		in := inputFrom(*current, cmd.Flags().Changed)
		if err := cmdutil.ValidateUser(in, false); err != nil {
			return err
		}

		updated, err := deps.Client.UpdateUser(ctx, id, in)
		if err != nil {
			return cmdutil.Failure("Error al actualizar el usuario", err)
		}
		pterm.Success.Printf("Usuario actualizado: %d %s\n", updated.ID, updated.Email)
		deps.Router.Go("/usuarios")
		return nil
	},
}
