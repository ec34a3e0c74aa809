package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/tds/logger"
)

const (
	logDir      = "logs"
	logFileName = "tds.log"
)

// setupLogging directs the logger to logs/tds.log when debug is set
// Without debug the logger keeps discarding; a nil file means nothing to close
func setupLogging(debug bool) *os.File {
	if !debug {
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return nil
	}
	logger.Init(f)
	logger.Component("main").Info("logging started")
	return f
}
