//go:build !windows

package process

import "syscall"

// KillProcessGroup force-kills pid and every child in its process group;
// the negative PID addresses the whole group. Errors are dropped: this is
// best-effort cleanup and the caller falls back to launcher.Kill().
func KillProcessGroup(pid int) {
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
