package cursos

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

// CursosCmd is the parent command for course operations
var CursosCmd = &cobra.Command{
	Use:   "cursos",
	Short: "Manage and browse courses",
	Long: `Commands for the course catalogue. Administrators and teachers manage
courses; students browse the active ones and enroll.`,
}

func init() {
	CursosCmd.AddCommand(listCmd)
	CursosCmd.AddCommand(createCmd)
	CursosCmd.AddCommand(editCmd)
	CursosCmd.AddCommand(deleteCmd)
	CursosCmd.AddCommand(disponiblesCmd)
	CursosCmd.AddCommand(inscribirCmd)
	CursosCmd.AddCommand(detalleCmd)
}

// descriptionPreviewLimit bounds the description column of course tables.
const descriptionPreviewLimit = 40

func printCourses(w io.Writer, courses []sdk.Course) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITULO\tESTADO\tDESCRIPCION")
	for _, c := range courses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.Titulo, statusLabel(c.Estado), preview(c.Descripcion, descriptionPreviewLimit))
	}
	return tw.Flush()
}

func statusLabel(s sdk.CourseStatus) string {
	if s == "" {
		return "-"
	}
	return s.Label()
}

func preview(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// buildListFilter combines the raw --filter expression with the --estado and
// --titulo shortcuts into one bexpr expression.
func buildListFilter(raw, estado, titulo string) (string, error) {
	var parts []string
	if raw = strings.TrimSpace(raw); raw != "" {
		parts = append(parts, raw)
	}
	if estado != "" {
		status := sdk.CourseStatus(strings.ToUpper(estado))
		if !status.Valid() {
			return "", fmt.Errorf("unknown course status %q", estado)
		}
		parts = append(parts, sdk.BuildBexprFilter(sdk.FilterFields{"estado": string(status)}))
	}
	if titulo != "" {
		parts = append(parts, fmt.Sprintf("titulo contains %s", strconv.Quote(titulo)))
	}

	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], nil
	}
	return "(" + strings.Join(parts, ") and (") + ")", nil
}
