//go:build windows

package process

import "syscall"

// GroupAttr returns nil on Windows; taskkill /T already terminates the
// whole child tree, so no group placement is needed.
func GroupAttr() *syscall.SysProcAttr {
	return nil
}
