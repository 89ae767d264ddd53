package process

// Notes:
// - only the harmless path is unit-testable: a live PID would get killed
//   for real, and PID 0 would take down the test's own process group
// - real termination is covered by the browser cleanup integration tests

import "testing"

func TestKillProcessGroupUnknownPID(t *testing.T) {
	t.Parallel()

	// Must return without panicking and without touching a live process.
	KillProcessGroup(1 << 30)
}
