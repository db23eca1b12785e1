package main

import (
	"path/filepath"

	"github.com/coveooss/gotemplate/v3/collections"
)

// Environment variables used to locate the application data directory
const (
	envAppData       = "APPDATA"
	envXDGConfigHome = "XDG_CONFIG_HOME"
	envHome          = "HOME"
)

// lookupEnv searches an os.Environ() style list. The last definition wins, as
// it does for the process environment.
func lookupEnv(env []string, name string) (value string, found bool) {
	for _, entry := range env {
		if key, val := collections.Split2(entry, "="); key == name {
			value, found = val, true
		}
	}
	return
}

// appDataDir returns the per user application data directory described by env
func appDataDir(env []string) (string, bool) {
	if dir, _ := lookupEnv(env, envAppData); dir != "" {
		return dir, true
	}
	if dir, _ := lookupEnv(env, envXDGConfigHome); dir != "" {
		return dir, true
	}
	if home, _ := lookupEnv(env, envHome); home != "" {
		return filepath.Join(home, ".config"), true
	}
	return "", false
}

// appFolderPath returns the folder where the application keeps its per user files
func appFolderPath(env []string, folderName string) (string, bool) {
	dir, ok := appDataDir(env)
	if !ok {
		return "", false
	}
	return filepath.Join(dir, folderName), true
}

// defaultParamsPath returns the location where the updater writes the parameter file
func defaultParamsPath(env []string, config *RelauncherConfig) (string, bool) {
	folder, ok := appFolderPath(env, config.AppFolder)
	if !ok {
		return "", false
	}
	return filepath.Join(folder, config.ParamsFileName), true
}
