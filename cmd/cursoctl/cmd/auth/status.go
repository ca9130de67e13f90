package auth

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/internal/nav"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

var statusCmd = &cobra.Command{
	Use:         "status",
	Short:       "Display the stored session",
	Annotations: cmdutil.Route(nav.PathDashboard),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}
		s, err := deps.Auth.RequireSession()
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println("Authentication Status")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "USER ID\t%d\n", s.UserID)
		fmt.Fprintf(w, "NAME\t%s\n", dash(s.UserName))
		fmt.Fprintf(w, "EMAIL\t%s\n", dash(s.UserEmail))
		fmt.Fprintf(w, "ROLE\t%s (%s)\n", dash(string(s.Role)), s.Role.Label())
		fmt.Fprintf(w, "ADMIN\t%t\n", deps.Auth.IsAdmin())
		fmt.Fprintf(w, "DOCENTE\t%t\n", deps.Auth.IsDocente())
		fmt.Fprintf(w, "ESTUDIANTE\t%t\n", deps.Auth.IsEstudiante())
		if claims, ok := sdk.DecodeClaims(s.Token); ok && claims.Subject != "" {
			fmt.Fprintf(w, "TOKEN SUBJECT\t%s\n", claims.Subject)
		}
		return w.Flush()
	},
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
