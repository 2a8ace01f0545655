//go:build !windows

package process

import "syscall"

// KillProcessGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID).
func KillProcessGroup(pid int) {
	// Best-effort cleanup; the caller decides how to report a stuck child
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
