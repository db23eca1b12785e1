//go:build windows

package main

import "golang.org/x/sys/windows"

var freeConsole = windows.NewLazySystemDLL("kernel32.dll").NewProc("FreeConsole")

// manageConsole detaches the relauncher from the console it was given when the
// updater started it from a console program. Nothing is shown unless output
// was explicitly asked for.
func manageConsole(keep bool) {
	if keep || freeConsole.Find() != nil {
		return
	}
	freeConsole.Call()
}
