package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

const byteOrderMark = "\uFEFF"

var errMissingLines = errors.New("the parameter file must contain the executable path and the secondary path on two lines")

// readParamsFile reads the two-line file written by the updater: the
// executable path, then the secondary path which may be blank.
func readParamsFile(filename string) (*LaunchRequest, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &ConfigError{Op: "opening parameter file", Path: filename, Err: err}
	}
	defer file.Close()

	lines, err := readLines(file, 2)
	if err != nil {
		return nil, &ConfigError{Op: "reading parameter file", Path: filename, Err: err}
	}
	if len(lines) < 2 {
		return nil, &ConfigError{Op: "reading parameter file", Path: filename, Err: errMissingLines}
	}

	return &LaunchRequest{
		ExecutablePath: strings.TrimPrefix(lines[0], byteOrderMark),
		SecondaryPath:  lines[1],
		Source:         filename,
	}, nil
}

// readLines returns up to count lines, each cut at its first carriage return
// or line feed. A last line without terminator still counts.
func readLines(r io.Reader, count int) ([]string, error) {
	reader := bufio.NewReader(r)
	lines := make([]string, 0, count)
	for len(lines) < count {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if err == io.EOF && line == "" {
			break
		}
		if i := strings.IndexAny(line, "\r\n"); i >= 0 {
			line = line[:i]
		}
		lines = append(lines, line)
		if err == io.EOF {
			break
		}
	}
	return lines, nil
}
