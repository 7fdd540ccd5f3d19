//go:build unit
// +build unit

package auditor

import (
	"testing"

	"github.com/lerenn/geoaudit/pkg/align"
	"github.com/lerenn/geoaudit/pkg/config"
	"github.com/lerenn/geoaudit/pkg/pyprobe"
	"github.com/lerenn/geoaudit/pkg/sysprobe"
	"go.uber.org/mock/gomock"
)

// TestAuditor contains all the mocks and the auditor instance for testing.
type TestAuditor struct {
	Auditor        *Auditor
	MockController *gomock.Controller
	MockSysProber  *sysprobe.MockProber
	MockPyProber   *pyprobe.MockProber
	MockChecker    *align.MockChecker
}

// newTestAuditor creates a TestAuditor with all probes and the checker mocked.
func newTestAuditor(t *testing.T, cfg *config.Config) *TestAuditor {
	ctrl := gomock.NewController(t)

	mockSysProber := sysprobe.NewMockProber(ctrl)
	mockPyProber := pyprobe.NewMockProber(ctrl)
	mockChecker := align.NewMockChecker(ctrl)

	// Build the Auditor directly, bypassing New() which wires the real
	// command runner.
	a := &Auditor{
		config:    cfg,
		sysProber: mockSysProber,
		pyProber:  mockPyProber,
		checker:   mockChecker,
	}

	return &TestAuditor{
		Auditor:        a,
		MockController: ctrl,
		MockSysProber:  mockSysProber,
		MockPyProber:   mockPyProber,
		MockChecker:    mockChecker,
	}
}
