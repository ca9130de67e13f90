package usuarios

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:         "delete <id>",
	Short:       "Delete a user",
	Args:        cobra.ExactArgs(1),
	Annotations: cmdutil.Route("/usuarios"),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := cmdutil.ParseID(args[0])
		if err != nil {
			return err
		}
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		ok, err := cmdutil.Confirm("¿Estás seguro de que deseas eliminar este usuario?", deleteYes, deps.Config.NonInteractive)
		if err != nil || !ok {
			return err
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		if err := deps.Client.DeleteUser(ctx, id); err != nil {
			return cmdutil.Failure("Error al eliminar el usuario", err)
		}
		pterm.Success.Println("Usuario eliminado exitosamente")
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
