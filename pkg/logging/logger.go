// Package logging provides file-based debug logging for browsercloud
// components. Logs go to a per-process file under ~/.browsercloud/logs/
// rather than stderr: when the server runs on the stdio transport, both
// standard streams belong to the MCP framing and must stay clean.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger writes structured log lines for a single component. All levels
// write unconditionally; there is no level filtering.
type Logger struct {
	processID string
	component string
	file      *os.File
	logger    *log.Logger
	mu        sync.Mutex
	logPath   string
	closeOnce sync.Once
}

var (
	processID     string
	processIDOnce sync.Once

	logDir   string
	initOnce sync.Once
	initErr  error
)

// getProcessID returns or creates the log correlation ID for this process.
func getProcessID() string {
	processIDOnce.Do(func() {
		processID = uuid.New().String()
	})
	return processID
}

func initLogDirectory() error {
	initOnce.Do(func() {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			initErr = fmt.Errorf("failed to get home directory: %w", err)
			return
		}

		logDir = filepath.Join(homeDir, ".browsercloud", "logs")
		if err := os.MkdirAll(logDir, 0750); err != nil {
			initErr = fmt.Errorf("failed to create log directory: %w", err)
		}
	})
	return initErr
}

// NewLogger creates a logger for a component, writing to
// ~/.browsercloud/logs/<process-id>-browsercloud.log. If the file cannot
// be opened it returns a stderr fallback logger along with the error, so
// callers that are not on the stdio transport can still see output.
func NewLogger(component string) (*Logger, error) {
	if err := initLogDirectory(); err != nil {
		return newFallbackLogger(component), err
	}

	id := getProcessID()
	logPath := filepath.Join(logDir, fmt.Sprintf("%s-browsercloud.log", id))

	// Append mode: every component in the process shares one file.
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return newFallbackLogger(component), fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		processID: id,
		component: component,
		file:      file,
		logger:    log.New(file, "", 0),
		logPath:   logPath,
	}, nil
}

func newFallbackLogger(component string) *Logger {
	return &Logger{
		processID: getProcessID(),
		component: component,
		logger:    log.New(os.Stderr, fmt.Sprintf("[%s] ", component), log.LstdFlags),
	}
}

func (l *Logger) emit(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	l.logger.Printf("[%s] [%s] [%s] %s", timestamp, l.component, level, fmt.Sprintf(format, v...))
}

// Debugf logs a debug-level message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.emit("DEBUG", format, v...) }

// Infof logs an info-level message.
func (l *Logger) Infof(format string, v ...interface{}) { l.emit("INFO", format, v...) }

// Warnf logs a warning-level message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.emit("WARN", format, v...) }

// Errorf logs an error-level message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.emit("ERROR", format, v...) }

// LogPath returns the path of the log file, or empty in fallback mode.
func (l *Logger) LogPath() string {
	return l.logPath
}

// ProcessID returns the log correlation ID for this process.
func (l *Logger) ProcessID() string {
	return l.processID
}

// Close closes the log file. Safe to call multiple times.
func (l *Logger) Close() error {
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
		}
	})
	return err
}
