//go:build windows

package main

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// The command line is passed verbatim so each path keeps its own quotes
func sysProcAttr(spec LaunchSpec) *syscall.SysProcAttr {
	attr := &syscall.SysProcAttr{CmdLine: spec.CommandLine}
	if spec.Hidden {
		attr.HideWindow = true
		attr.CreationFlags |= windows.CREATE_NO_WINDOW
	}
	return attr
}
