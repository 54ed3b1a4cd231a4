package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const defaultLogFile = "logs/loadgen.log"

// SetupLogging points the standard library logger at both stdout and a log
// file (LOG_FILE env, default logs/loadgen.log), creating the directory for
// the file if necessary. Driver status lines are printed directly and do not
// go through the logger.
func SetupLogging() error {
	file := getenv("LOG_FILE", defaultLogFile)

	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	log.SetOutput(io.MultiWriter(os.Stdout, f))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return nil
}
