//go:build !windows

package main

import "syscall"

// The child gets its own session so it survives the relauncher and the
// terminal that may have started it. Hidden has no meaning here.
func sysProcAttr(LaunchSpec) *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
