package main

import (
	"bytes"
	"os"
	"strings"
	"text/template"

	"github.com/coveooss/kingpin/v2"
	"github.com/fatih/color"
)

var description = `
DESCRIPTION:
Relauncher restarts {{ .app }} once an update has been applied. It starts the application
executable in its own folder, forwarding the database path with {{ .flag }} when there is one.

The paths are taken, in order, from:
	relauncher --exe <executable> [--db <database>]
	relauncher <executable> [<database>]
	relauncher [<parameter file>]

The parameter file contains the executable path on its first line and the database path
(possibly blank) on its second line. When no file is given, {{ .params }} is used.

Additional settings may be put in a YAML file named '{{ .config }}'. Configurable values are: {{ .options }}.

Relauncher does not open any window. Use --log-file or {{ .envLogFile }} to keep a trace of its execution.

VERSION: {{ .version }}
`

// CLI Environment Variables
const (
	envExe        = "RELAUNCHER_EXE"
	envDB         = "RELAUNCHER_DB"
	envParamsFile = "RELAUNCHER_PARAMS_FILE"
	envLocation   = "RELAUNCHER_CONFIG_LOCATION"
	envLogging    = "RELAUNCHER_LOGGING_LEVEL"
	envLogFile    = "RELAUNCHER_LOG_FILE"
)

// RelauncherApplication holds the parsed command line
type RelauncherApplication struct {
	*Application
	ConfigLocation    string
	DryRun            bool
	Executable        string
	GetCurrentVersion bool
	LogFile           string
	LoggingLevel      string
	ParamsFile        string
	Secondary         string

	env     []string
	starter ProcessStarter
}

func (app *RelauncherApplication) parse(args []string) *RelauncherApplication {
	app.Switch("current-version", "Get current version information (alias --cv)").BoolVar(&app.GetCurrentVersion)
	app.Switch("dry-run", "Print the command line instead of starting the application", 'n').BoolVar(&app.DryRun)
	app.Argument("config-location", "Set the folder holding "+configFile+" or set "+envLocation).PlaceHolder("<path>").Envar(envLocation).StringVar(&app.ConfigLocation)
	app.Argument("db", "Database path forwarded to the application or set "+envDB, 'd').PlaceHolder("<path>").Envar(envDB).StringVar(&app.Secondary)
	app.Argument("exe", "Executable to start instead of reading a parameter file or set "+envExe, 'e').PlaceHolder("<path>").Envar(envExe).StringVar(&app.Executable)
	app.Argument("log-file", "Append diagnostics to this file or set "+envLogFile).PlaceHolder("<path>").Envar(envLogFile).StringVar(&app.LogFile)
	app.Argument("logging-level", "Set the logging level (critical, error, warning, notice, info, debug, trace) or set "+envLogging, 'L').PlaceHolder("<level>").Envar(envLogging).StringVar(&app.LoggingLevel)
	app.Argument("params-file", "Read the paths from this file or set "+envParamsFile, 'p').PlaceHolder("<path>").Envar(envParamsFile).StringVar(&app.ParamsFile)

	app.Switch("cv", "alias for current-version").Hidden().BoolVar(&app.GetCurrentVersion)

	must(app.Parse(append([]string{app.Name}, args...)))
	return app
}

// NewRelauncherApplication returns an initialized RelauncherApplication along with the parsed CLI arguments
func NewRelauncherApplication(args []string) *RelauncherApplication {
	var descriptionBuffer bytes.Buffer
	descriptionTemplate := template.Must(template.New("usage").Parse(description))
	bold := color.New(color.Bold).SprintfFunc()
	descriptionTemplate.Execute(&descriptionBuffer, map[string]interface{}{
		"app":        bold(defaultAppFolder),
		"flag":       defaultSecondaryFlag,
		"params":     color.CyanString("<app data>/%s/%s", defaultAppFolder, defaultParamsFile),
		"config":     configFile,
		"options":    color.GreenString(strings.Join(getConfigFields(), ", ")),
		"envLogFile": envLogFile,
		"version":    version,
	})

	app := RelauncherApplication{
		Application: NewApplication("relauncher", descriptionBuffer.String()),
		env:         os.Environ(),
		starter:     osProcessStarter{},
	}
	app.UsageWriter(color.Output)
	app.Author("CalibrationTracker")
	kingpin.CommandLine = app.Application.Application
	return app.parse(args)
}

// needsConsole tells whether the requested action prints something for the user
func (app *RelauncherApplication) needsConsole() bool {
	return app.DryRun || app.GetCurrentVersion
}
