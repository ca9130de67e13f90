package aprobacion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MiguelCGonzales94/Curso-Online/cmd/cursoctl/cmd/cmdutil"
	"github.com/MiguelCGonzales94/Curso-Online/pkg/sdk"
)

func TestDecisionOutcome(t *testing.T) {
	msg, err := approve.outcome(&sdk.MessageResponse{Message: "Curso aprobado"})
	require.NoError(t, err)
	assert.Equal(t, "Curso aprobado", msg)

	msg, err = reject.outcome(&sdk.MessageResponse{})
	require.NoError(t, err)
	assert.Equal(t, "Curso rechazado", msg)

	msg, err = approve.outcome(nil)
	require.NoError(t, err)
	assert.Equal(t, approve.success, msg)

	_, err = reject.outcome(&sdk.MessageResponse{Error: "Curso no encontrado"})
	assert.EqualError(t, err, "Curso no encontrado")
}

func TestApprovalCommandsAreGuarded(t *testing.T) {
	for _, c := range AprobacionCmd.Commands() {
		pattern, ok := cmdutil.RouteOf(c)
		assert.True(t, ok, c.Name())
		assert.Equal(t, route, pattern, c.Name())
	}
}
