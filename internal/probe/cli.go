package probe

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/rubriq/rubriq/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging initializes the structured logger and tees the progress
// output (stdlib log) to both the console and a file. An empty logFile
// gets a timestamped default. The file stays open for the process's life.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		logFile = "probe_log_" + time.Now().Format("20060102_150405") + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, file))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the probe.
func ShowHelp() {
	os.Stdout.WriteString(`Rubriq Conversation Probe
=========================

A concurrent tool for exercising and verifying the Rubriq analysis service.
It stamps conversations from fixed archetype templates, posts them to
/analyze, and checks the verdicts against the catalog served by /dimensions.

Usage:
  go run cmd/probe/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -conversations int
        Number of conversations to submit (default 200)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output file for outcomes (default: probe_outcomes_TIMESTAMP.json)
  -log string
        Log file for probe output (default: probe_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Probe with default settings
  go run cmd/probe/main.go

  # Probe with custom parameters
  go run cmd/probe/main.go -conversations 1000 -workers 16 -url http://localhost:8080

  # Probe with verbose output
  go run cmd/probe/main.go -verbose -conversations 500

  # Probe with custom log file
  go run cmd/probe/main.go -conversations 1000 -log my_probe.log
`)
}
