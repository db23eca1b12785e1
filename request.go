package main

import "errors"

// Sources of a launch request other than a parameter file
const (
	sourceArguments = "arguments"
	sourceFlags     = "flags"
)

var (
	errNoAppData       = errors.New("no application data directory in the environment")
	errEmptyExecutable = errors.New("the executable path is empty")
)

// LaunchRequest is the executable to relaunch and the optional secondary path
// to forward to it
type LaunchRequest struct {
	ExecutablePath string
	SecondaryPath  string
	Source         string
}

// requestInputs gathers everything the resolution depends on, so it can be
// evaluated without touching the process environment
type requestInputs struct {
	Positional []string
	Executable string
	Secondary  string
	ParamsFile string
	Env        []string
}

// resolveLaunchRequest determines what to launch. Explicit paths win over the
// parameter file, which is looked up at its default location when not given.
// A single argument is the executable when it is one, a parameter file otherwise.
func resolveLaunchRequest(in requestInputs, config *RelauncherConfig) (*LaunchRequest, error) {
	var request *LaunchRequest

	switch {
	case in.Executable != "":
		request = &LaunchRequest{ExecutablePath: in.Executable, SecondaryPath: in.Secondary, Source: sourceFlags}
	case len(in.Positional) >= 2:
		if len(in.Positional) > 2 {
			log.Warningf("Ignoring extra arguments %q", in.Positional[2:])
		}
		request = &LaunchRequest{ExecutablePath: in.Positional[0], SecondaryPath: in.Positional[1], Source: sourceArguments}
	case len(in.Positional) == 1 && in.ParamsFile == "" && looksExecutable(in.Positional[0]):
		// The updater passes the executable alone when there is no database to reopen
		request = &LaunchRequest{ExecutablePath: in.Positional[0], SecondaryPath: in.Secondary, Source: sourceArguments}
	default:
		filename := in.ParamsFile
		if filename == "" && len(in.Positional) == 1 {
			filename = in.Positional[0]
		}
		if filename == "" {
			var ok bool
			if filename, ok = defaultParamsPath(in.Env, config); !ok {
				return nil, &ConfigError{Op: "locating parameter file", Err: errNoAppData}
			}
		}
		log.Debugf("Reading launch parameters from %s", filename)

		var err error
		if request, err = readParamsFile(filename); err != nil {
			return nil, err
		}
		if in.Secondary != "" {
			request.SecondaryPath = in.Secondary
		}
	}

	if request.ExecutablePath == "" {
		return nil, &ConfigError{Op: "resolving executable", Path: request.Source, Err: errEmptyExecutable}
	}
	return request, nil
}
