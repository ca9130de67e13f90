package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBexprFilter(t *testing.T) {
	filter := BuildBexprFilter(FilterFields{"titulo": "Go", "estado": CourseActive, "id": 3})
	assert.Equal(t, `estado == "ACTIVO" and id == 3 and titulo == "Go"`, filter)
	assert.Empty(t, BuildBexprFilter(nil))
}

func TestFormatBexprValue(t *testing.T) {
	assert.Equal(t, `"a\"b"`, formatBexprValue(`a"b`))
	assert.Equal(t, "true", formatBexprValue(true))
	assert.Equal(t, "false", formatBexprValue(false))
	assert.Equal(t, "4", formatBexprValue(4))
	assert.Equal(t, "7", formatBexprValue(int64(7)))
	assert.Equal(t, `"RECHAZADO"`, formatBexprValue(CourseRejected))
}

func TestCompileFilterCaches(t *testing.T) {
	first, err := compileFilter(`estado == "ACTIVO"`)
	require.NoError(t, err)
	second, err := compileFilter(`estado == "ACTIVO"`)
	require.NoError(t, err)
	assert.Same(t, first, second)

	assert.True(t, first.match(map[string]any{"estado": "ACTIVO"}))
	assert.False(t, first.match(map[string]any{"estado": "PENDIENTE"}))
	assert.False(t, first.match(map[string]any{}))
}
