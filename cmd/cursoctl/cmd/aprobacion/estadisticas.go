package aprobacion

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
)

var estadisticasCmd = &cobra.Command{
	Use:         "estadisticas",
	Short:       "Show the approval counters",
	Annotations: cmdutil.Route(route),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := cmdutil.Load(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := deps.Config.WithTimeout(cmd.Context())
		defer cancel()

		stats, err := deps.Client.ApprovalStats(ctx)
		if err != nil {
			return cmdutil.Failure("Error al cargar las estadísticas", err)
		}

		table := pterm.TableData{
			{"PENDIENTES", "APROBADOS", "RECHAZADOS"},
			{strconv.Itoa(stats.Pendientes), strconv.Itoa(stats.Aprobados), strconv.Itoa(stats.Rechazados)},
		}
		return pterm.DefaultTable.WithHasHeader().WithData(table).Render()
	},
}
