package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	// Handle eventual panic message
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintln(color.Error, errorString("%[1]v (%[1]T)", err))
			os.Exit(1)
		}
	}()

	app := NewRelauncherApplication(os.Args[1:])
	manageConsole(app.needsConsole())
	os.Exit(app.Run())
}

var errorString = color.New(color.FgRed).SprintfFunc()
