package aprobacion

import (
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
)

const route = "/aprobacion-cursos"

// AprobacionCmd is the parent command for the course approval workflow
var AprobacionCmd = &cobra.Command{
	Use:   "aprobacion",
	Short: "Review courses waiting for approval",
	Long:  `Administrator commands for approving or rejecting submitted courses.`,
}

var decisionYes bool

func init() {
	AprobacionCmd.AddCommand(pendientesCmd)
	AprobacionCmd.AddCommand(aprobarCmd)
	AprobacionCmd.AddCommand(rechazarCmd)
	AprobacionCmd.AddCommand(estadisticasCmd)

	for _, c := range []*cobra.Command{aprobarCmd, rechazarCmd} {
		c.Annotations = cmdutil.Route(route)
		c.Flags().BoolVarP(&decisionYes, "yes", "y", false, "Skip the confirmation prompt")
	}
}
