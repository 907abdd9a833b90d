//go:build !unix

package main

import (
	"fmt"
	"os"
)

// redirectStdIO swaps os.Stdout and os.Stderr for the log file at path.
// Without Dup2 runtime panics still reach the original stderr.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open stdio log: %w", err)
	}
	os.Stdout, os.Stderr = logFile, logFile
	return nil
}
