//go:build !windows

package main

// Only Windows attaches a console window to the process
func manageConsole(bool) {}
