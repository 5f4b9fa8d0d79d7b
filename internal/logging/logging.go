package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Dir returns ~/.jobtrack/logs
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".jobtrack", "logs"), nil
}

// Init initializes the logging system, writing logs to ~/.jobtrack/logs/jobtrack.log
// Uses text format for human readability.
func Init() error {
	logDir, err := Dir()
	if err != nil {
		return err
	}
	return InitIn(logDir)
}

// InitIn writes logs to jobtrack.log inside logDir
func InitIn(logDir string) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "jobtrack.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Standard log output goes to the same file so the terminal stays clean
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}
