//go:build !windows

package process

import "syscall"

// GroupAttr returns process attributes that place a child in its own
// process group, so KillProcessGroup can take down the whole tree.
func GroupAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
