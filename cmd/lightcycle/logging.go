package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	logDir      = "logs"
	logFileName = "lightcycle.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MiB
)

// setupLogging opens logs/lightcycle.log when debug is set and returns a logger writing to it
// Without debug all output is discarded, the terminal belongs to tcell
func setupLogging(debug bool) (*os.File, zerolog.Logger) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, zerolog.Nop()
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil, zerolog.Nop()
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := fmt.Sprintf("%s.%s", logPath, "old")
		_ = os.Remove(rotated)
		if err := os.Rename(logPath, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil, zerolog.Nop()
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, zerolog.Nop()
	}

	// Stray stdlib log calls land in the same file
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	logger := zerolog.New(logFile).With().Timestamp().Str("component", "lightcycle").Logger()
	return logFile, logger
}
