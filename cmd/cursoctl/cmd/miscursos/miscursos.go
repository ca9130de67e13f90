package miscursos

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

// MisCursosCmd is the parent command for the logged-in user's enrollments
var MisCursosCmd = &cobra.Command{
	Use:   "mis-cursos",
	Short: "Manage your course enrollments",
}

func init() {
	MisCursosCmd.AddCommand(listCmd)
	MisCursosCmd.AddCommand(cancelarCmd)
}

func printEnrollments(w io.Writer, enrollments []sdk.Enrollment) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INSCRIPCION\tCURSO\tTITULO\tESTADO")
	for _, e := range enrollments {
		id := "-"
		if e.ID > 0 {
			id = fmt.Sprint(e.ID)
		}
		estado := "-"
		if e.Curso.Estado != "" {
			estado = e.Curso.Estado.Label()
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", id, e.Curso.ID, e.Curso.Titulo, estado)
	}
	return tw.Flush()
}
