package command

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/lerenn/geoaudit/pkg/logging"
	"go.uber.org/zap"
)

// RunParams contains parameters for Run.
type RunParams struct {
	Name string
	Args []string
}

// Runner defines the interface for executing external commands.
//
//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=runner.go -destination=mock_runner.gen.go -package=command
type Runner interface {
	// Run executes the command synchronously and returns its trimmed standard
	// output. Any execution failure (missing binary, non-zero exit, timeout)
	// is returned as an error.
	Run(ctx context.Context, params RunParams) (string, error)
}

// runner implements the Runner interface using os/exec.
type runner struct {
	timeout time.Duration
}

// NewRunner returns a Runner that bounds every invocation with the given
// timeout. A zero timeout means no deadline beyond the caller's context.
func NewRunner(timeout time.Duration) Runner {
	return &runner{timeout: timeout}
}

// Run implements the Runner interface.
func (r *runner) Run(ctx context.Context, params RunParams) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, params.Name, params.Args...)
	out, err := cmd.Output()
	if err != nil {
		logging.C(ctx).Debug("Command failed",
			zap.String("command", params.Name),
			zap.Strings("args", params.Args),
			zap.Error(err),
		)
		return "", fmt.Errorf("running %s: %w", params.Name, err)
	}

	return strings.TrimSpace(string(out)), nil
}
