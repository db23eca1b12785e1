package main

import "fmt"

// ConfigError is returned when the executable to relaunch cannot be determined
type ConfigError struct {
	Op   string
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// LaunchError is returned when the operating system refuses to create the process
type LaunchError struct {
	Program string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launching %s: %v", e.Program, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// must traps errors and return the remaining results to the caller
// If there is an error, a panic is issued
func must(result ...interface{}) interface{} {
	last := len(result) - 1
	if err := result[last]; err != nil {
		panic(err)
	}

	result = result[:last]
	switch len(result) {
	case 0:
		return nil
	case 1:
		return result[0]
	default:
		return result
	}
}
