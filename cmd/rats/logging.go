package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "rats.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes logrus to logs/rats.log when debug is set and discards
// everything otherwise, so log lines never land on the game screen.
// A log file above maxLogSize is rotated aside with a timestamp suffix.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		log.SetLevel(log.WarnLevel)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "cannot create log directory: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("rats-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "cannot rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	log.WithField("pid", os.Getpid()).Info("logging started")
	return f
}
