package usuarios

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var listSearch string

var listCmd = &cobra.Command{
	Use:         "list",
	Short:       "List users",
	Annotations: cmdutil.Route("/usuarios"),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		users, err := deps.Client.ListUsers(ctx)
		if err != nil {
			return cmdutil.Failure("Error al cargar los usuarios", err)
		}
		users = sdk.SearchUsers(users, listSearch)
		if len(users) == 0 {
			pterm.Info.Println("No se encontraron usuarios.")
			return nil
		}
		return printUsers(os.Stdout, users)
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Only users whose name or email contains this text")
}
