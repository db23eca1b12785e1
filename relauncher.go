package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// InitConfig gathers the configuration from the command line, the config files and the defaults
func InitConfig(app *RelauncherApplication) *RelauncherConfig {
	config := &RelauncherConfig{}
	config.SetValue(loggingLevel, app.LoggingLevel)
	config.SetValue(logFile, app.LogFile)

	var executableDir string
	if executable, err := os.Executable(); err == nil {
		executableDir = filepath.Dir(executable)
	}
	config.LoadFolders(app.ConfigLocation, executableDir)

	// The app folder name itself may come from the files loaded above
	folderName := config.AppFolder
	if folderName == "" {
		folderName = defaultAppFolder
	}
	if folder, ok := appFolderPath(app.env, folderName); ok {
		config.LoadFolders(folder)
	}

	config.SetDefaultValues()
	return config
}

// Run executes the relaunch and returns the process exit code
func (app *RelauncherApplication) Run() int {
	if app.GetCurrentVersion {
		fmt.Fprintln(color.Output, versionString())
		return 0
	}
	return app.RunWithConfig(InitConfig(app))
}

// RunWithConfig resolves what to launch and starts it
func (app *RelauncherApplication) RunWithConfig(config *RelauncherConfig) int {
	closeLog, err := configureLogging(config)
	defer closeLog()
	if err != nil {
		log.Errorf("Logging setup: %v", err)
	}

	request, err := resolveLaunchRequest(requestInputs{
		Positional: app.Positional,
		Executable: app.Executable,
		Secondary:  app.Secondary,
		ParamsFile: app.ParamsFile,
		Env:        app.env,
	}, config)
	if err != nil {
		log.Error(err)
		return 1
	}
	log.Debugf("Relaunching %s with secondary path %q (from %s)", request.ExecutablePath, request.SecondaryPath, request.Source)

	spec := newLaunchSpec(request, config)
	if app.DryRun {
		fmt.Fprintln(color.Output, spec.CommandLine)
		if spec.Dir != "" {
			fmt.Fprintln(color.Output, color.HiBlackString("working directory: %s", spec.Dir))
		}
		return 0
	}

	if err := app.starter.Start(spec); err != nil {
		log.Error(err)
		return 1
	}
	log.Infof("Started %s", spec.CommandLine)
	return 0
}
