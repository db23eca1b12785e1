package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Signature at the start of every Windows executable
const peSignature = "MZ"

// looksExecutable tells whether a single path given on the command line is the
// application itself rather than a parameter file. Only existing regular files
// qualify: a .exe name, an executable bit or a PE header.
func looksExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if strings.EqualFold(filepath.Ext(path), ".exe") || info.Mode().Perm()&0111 != 0 {
		return true
	}

	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()
	header := make([]byte, len(peSignature))
	if _, err := io.ReadFull(file, header); err != nil {
		return false
	}
	return string(header) == peSignature
}
