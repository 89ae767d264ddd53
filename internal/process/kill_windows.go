//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup force-kills pid and its child tree via taskkill (/F
// force, /T tree). Errors are dropped: this is best-effort cleanup and the
// caller falls back to launcher.Kill().
func KillProcessGroup(pid int) {
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
