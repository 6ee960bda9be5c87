//go:build !profile

package profiler

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledScopesAreNoops(t *testing.T) {
	Init(16)
	end := Start("frame")
	require.NotNil(t, end)
	end()

	assert.ErrorIs(t, WriteSpeedscope(filepath.Join(t.TempDir(), "p.json")), ErrDisabled)
	_, err := Dump()
	assert.ErrorIs(t, err, ErrDisabled)
	assert.False(t, Enabled)
}
