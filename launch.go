package main

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// LaunchSpec is everything the operating system needs to start the process
type LaunchSpec struct {
	Program     string
	Args        []string
	CommandLine string
	Dir         string   // empty to inherit the current directory
	Env         []string // nil to inherit the environment
	Hidden      bool
}

// ProcessStarter starts a process without waiting for it
type ProcessStarter interface {
	Start(spec LaunchSpec) error
}

// newLaunchSpec turns a resolved request into the process to create. The
// secondary path is only forwarded when it is not empty.
func newLaunchSpec(request *LaunchRequest, config *RelauncherConfig) LaunchSpec {
	var args []string
	commandLine := quote(request.ExecutablePath)
	if request.SecondaryPath != "" {
		args = []string{config.SecondaryFlag, request.SecondaryPath}
		commandLine += " " + config.SecondaryFlag + " " + quote(request.SecondaryPath)
	}

	return LaunchSpec{
		Program:     request.ExecutablePath,
		Args:        args,
		CommandLine: commandLine,
		Dir:         workingDir(request.ExecutablePath),
		Hidden:      true,
	}
}

// workingDir strips the last path element, accepting both separators. An empty
// result means the current directory is inherited.
func workingDir(executable string) string {
	if i := strings.LastIndexAny(executable, `/\`); i >= 0 {
		return executable[:i]
	}
	return ""
}

// Embedded quotes are not escaped; such paths are not supported
func quote(path string) string {
	return `"` + path + `"`
}

// execCmd builds the command without looking the program up in PATH. The
// program is made absolute so that changing directory does not alter which
// file gets executed.
func (spec LaunchSpec) execCmd() (*exec.Cmd, error) {
	program, err := filepath.Abs(spec.Program)
	if err != nil {
		return nil, err
	}
	return &exec.Cmd{
		Path: program,
		Args: append([]string{spec.Program}, spec.Args...),
		Dir:  spec.Dir,
		Env:  spec.Env,
	}, nil
}

type osProcessStarter struct{}

// Start creates the process and releases it right away
func (osProcessStarter) Start(spec LaunchSpec) error {
	cmd, err := spec.execCmd()
	if err != nil {
		return &LaunchError{Program: spec.Program, Err: err}
	}
	cmd.SysProcAttr = sysProcAttr(spec)
	if err := cmd.Start(); err != nil {
		return &LaunchError{Program: spec.Program, Err: err}
	}
	log.Debugf("Started %s (pid %d)", cmd.Path, cmd.Process.Pid)
	if err := cmd.Process.Release(); err != nil {
		log.Debugf("Releasing process handle: %v", err)
	}
	return nil
}
