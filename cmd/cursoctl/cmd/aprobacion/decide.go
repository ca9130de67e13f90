package aprobacion

import (
	"context"
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

// decision describes one of the approval actions.
type decision struct {
	question string
	success  string
	failure  string
	call     func(c *sdk.Client, ctx context.Context, id int64) (*sdk.MessageResponse, error)
}

var (
	approve = decision{
		question: "¿Estás seguro de aprobar este curso? Estará disponible para inscripción.",
		success:  "Curso aprobado exitosamente",
		failure:  "Error al aprobar el curso",
		call:     (*sdk.Client).ApproveCourse,
	}
	reject = decision{
		question: "¿Estás seguro de rechazar este curso? Esta acción no se puede deshacer.",
		success:  "Curso rechazado",
		failure:  "Error al rechazar el curso",
		call:     (*sdk.Client).RejectCourse,
	}
)

var aprobarCmd = &cobra.Command{
	Use:   "aprobar <id>",
	Short: "Approve a pending course",
	Args:  cobra.ExactArgs(1),
	RunE:  approve.run,
}

var rechazarCmd = &cobra.Command{
	Use:   "rechazar <id>",
	Short: "Reject a pending course",
	Args:  cobra.ExactArgs(1),
	RunE:  reject.run,
}

func (d decision) run(cmd *cobra.Command, args []string) error {
	id, err := cmdutil.ParseID(args[0])
	if err != nil {
		return err
	}
	deps, err := cmdutil.Load(cmd.Context())
	if err != nil {
		return err
	}
	ok, err := cmdutil.Confirm(d.question, decisionYes, deps.Config.NonInteractive)
	if err != nil || !ok {
		return err
	}

	ctx, cancel := deps.Config.WithTimeout(cmd.Context())
	defer cancel()

	resp, err := d.call(deps.Client, ctx, id)
	if err != nil {
		return cmdutil.Failure(d.failure, err)
	}
	msg, err := d.outcome(resp)
	if err != nil {
		return err
	}
	pterm.Success.Println(msg)
	return nil
}

// outcome prefers the backend's own message over the default text.
func (d decision) outcome(resp *sdk.MessageResponse) (string, error) {
	if resp == nil {
		return d.success, nil
	}
	if resp.Error != "" {
		return "", errors.New(resp.Error)
	}
	if resp.Message != "" {
		return resp.Message, nil
	}
	return d.success, nil
}
