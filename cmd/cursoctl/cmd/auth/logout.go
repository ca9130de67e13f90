package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and delete the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		if err := deps.Auth.Logout(); err != nil {
			return err
		}
		pterm.Success.Println("Logged out successfully")
		return nil
	},
}
