//go:build unit
// +build unit

package command

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run_TrimsOutput(t *testing.T) {
	r := NewRunner(0)

	out, err := r.Run(context.Background(), RunParams{
		Name: "echo",
		Args: []string{"3.8.0"},
	})
	require.NoError(t, err)
	assert.Equal(t, "3.8.0", out)
}

func TestRunner_Run_MissingBinary(t *testing.T) {
	r := NewRunner(0)

	_, err := r.Run(context.Background(), RunParams{
		Name: "definitely-not-a-real-binary-geoaudit",
	})
	assert.Error(t, err)
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	r := NewRunner(0)

	_, err := r.Run(context.Background(), RunParams{
		Name: "false",
	})
	assert.Error(t, err)
}

func TestRunner_Run_Timeout(t *testing.T) {
	r := NewRunner(50 * time.Millisecond)

	start := time.Now()
	_, err := r.Run(context.Background(), RunParams{
		Name: "sleep",
		Args: []string{"10"},
	})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
