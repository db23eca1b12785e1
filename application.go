package main

import (
	"strings"

	"github.com/coveooss/kingpin/v2"
)

// Application separates the flags known by kingpin from the positional paths
// given to the relauncher. Paths are never interpreted as flags, even when
// they look like one, unless they match a registered flag name.
type Application struct {
	*kingpin.Application

	longs      map[string]bool // true if it is a switch (bool), false otherwise
	shorts     map[rune]bool   // true if it is a switch (bool), false otherwise
	Positional []string
}

func (app Application) add(name, description string, isSwitch bool, shorts ...rune) *kingpin.FlagClause {
	flag := app.Application.Flag(name, description)
	switch len(shorts) {
	case 0:
	case 1:
		flag = flag.Short(shorts[0])
		app.shorts[shorts[0]] = isSwitch
	default:
		panic("Maximum one short option should be specified")
	}

	app.longs[name] = isSwitch
	return flag
}

// Switch adds a boolean flag that does not take a value
func (app Application) Switch(name, description string, shorts ...rune) *kingpin.FlagClause {
	return app.add(name, description, true, shorts...)
}

// Argument adds a flag that requires a value
func (app Application) Argument(name, description string, shorts ...rune) *kingpin.FlagClause {
	return app.add(name, description, false, shorts...)
}

// Parse hands the registered flags to kingpin and keeps everything else as
// positional arguments. args[0] is the program name and is skipped.
//
// Positional arguments are the executable and database paths, or the
// parameter file. The updater passes them unescaped, so a Windows path such
// as C:\Apps\Foo.exe, or a file named -backup.db, must reach the relauncher
// untouched instead of making kingpin fail on an unknown flag. Only words
// naming a registered flag are parsed; a path that collides with one can be
// protected by putting it after --.
func (app *Application) Parse(args []string) (command string, err error) {
	app.Positional = nil
	var managed []string
Arg:
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			// Remaining words are paths, whatever they look like
			app.Positional = append(app.Positional, args[i+1:]...)
			break
		}
		if strings.HasPrefix(arg, "--") {
			argSplit := strings.SplitN(arg[2:], "=", 2)
			argumentName := argSplit[0]
			// Handle kingpin negative flags (e.g.: --no-dry-run vs --dry-run)
			if _, known := app.longs[argumentName]; !known && strings.HasPrefix(argumentName, "no-") {
				argumentName = argumentName[3:]
			}
			if isSwitch, ok := app.longs[argumentName]; ok {
				managed = append(managed, arg)
				if !isSwitch && len(argSplit) == 1 {
					// The value is the next word
					i++
					if i < len(args) {
						managed = append(managed, args[i])
					}
				}
			} else {
				// Not one of our flags, so it is a path starting with dashes
				app.Positional = append(app.Positional, arg)
			}
		} else if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			withArg := false
			for pos, opt := range arg[1:] {
				if isSwitch, ok := app.shorts[opt]; ok {
					if !isSwitch {
						// A value flag consumes the rest of the word, or the next
						// word when it is the last character.
						withArg = pos == len(arg[1:])-1
						break
					}
				} else {
					// An unknown letter means the word is a path, not a flag group
					app.Positional = append(app.Positional, arg)
					continue Arg
				}
			}
			managed = append(managed, arg)
			if withArg {
				i++
				if i < len(args) {
					managed = append(managed, args[i])
				}
			}
		} else {
			// Plain paths, including a lone - used as a file name
			app.Positional = append(app.Positional, arg)
		}
	}
	return app.Application.Parse(managed)
}

// NewApplication returns an initialized Application
func NewApplication(name, description string) *Application {
	return &Application{
		Application: kingpin.New(name, description),
		longs: map[string]bool{
			"help":                   true,
			"help-man":               true,
			"help-long":              true,
			"completion-bash":        true,
			"completion-script-bash": true,
			"completion-script-zsh":  true,
		},
		shorts: map[rune]bool{},
	}
}
