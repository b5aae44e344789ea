package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"log/slog"
)

// Settings holds all detection configuration
type Settings struct {
	// Output settings
	OutputFile string
	Format     string // "text", "json" or "yaml"

	// Detection behavior
	ExcludePatterns []string
	Verbose         bool
	NoLinguist      bool          // Skip the external github-linguist collaborator
	LinguistTimeout time.Duration // Bound on one collaborator invocation
	NoCodeStats     bool          // Disable per-language line statistics

	// Logging
	LogLevel  slog.Level
	LogFormat string // "text" or "json"
	LogFile   string // Optional: write logs to file instead of stderr
}

// DefaultSettings returns default configuration
func DefaultSettings() *Settings {
	return &Settings{
		OutputFile:      "",
		Format:          "text",
		ExcludePatterns: []string{},
		Verbose:         false,
		NoLinguist:      false,
		LinguistTimeout: 30 * time.Second,
		NoCodeStats:     false,
		LogLevel:        slog.LevelError, // only errors by default
		LogFormat:       "text",
		LogFile:         "", // Empty = stderr
	}
}

// LoadSettings creates settings from defaults and applies environment variable overrides
func LoadSettings() *Settings {
	settings := DefaultSettings()

	if outputFile := os.Getenv("LINGUST_OUTPUT"); outputFile != "" {
		settings.OutputFile = outputFile
	}

	if format := os.Getenv("LINGUST_FORMAT"); format != "" {
		settings.Format = strings.ToLower(format)
	}

	if excludePatterns := os.Getenv("LINGUST_EXCLUDE"); excludePatterns != "" {
		settings.ExcludePatterns = strings.Split(excludePatterns, ",")
		for i, pattern := range settings.ExcludePatterns {
			settings.ExcludePatterns[i] = strings.TrimSpace(pattern)
		}
	}

	if verbose := os.Getenv("LINGUST_VERBOSE"); verbose != "" {
		settings.Verbose = strings.ToLower(verbose) == "true"
	}

	if noLinguist := os.Getenv("LINGUST_NO_LINGUIST"); noLinguist != "" {
		settings.NoLinguist = strings.ToLower(noLinguist) == "true"
	}

	if timeout := os.Getenv("LINGUST_LINGUIST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			settings.LinguistTimeout = d
		}
	}

	if noCodeStats := os.Getenv("LINGUST_NO_CODE_STATS"); noCodeStats != "" {
		settings.NoCodeStats = strings.ToLower(noCodeStats) == "true"
	}

	// Logging settings
	if logLevel := os.Getenv("LINGUST_LOG_LEVEL"); logLevel != "" {
		if level, err := ParseLogLevel(logLevel); err == nil {
			settings.LogLevel = level
		}
	}

	if logFormat := os.Getenv("LINGUST_LOG_FORMAT"); logFormat != "" {
		settings.LogFormat = logFormat
	}

	if logFile := os.Getenv("LINGUST_LOG_FILE"); logFile != "" {
		settings.LogFile = logFile
	}

	return settings
}

// ParseLogLevel converts string log level to slog.Level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// ConfigureLogger sets up a logger based on settings
func (s *Settings) ConfigureLogger() *slog.Logger {
	var handler slog.Handler

	// Set output destination
	var output io.Writer = os.Stderr
	if s.LogFile != "" {
		file, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			// Fallback to stderr if file can't be opened
			fmt.Fprintf(os.Stderr, "Warning: Cannot open log file %s: %v\n", s.LogFile, err)
			output = os.Stderr
		} else {
			output = file
		}
	}

	opts := &slog.HandlerOptions{
		Level: s.LogLevel,
	}

	if s.LogFormat == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

// Validate checks if settings are valid
func (s *Settings) Validate() error {
	switch s.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid format: %s. Valid formats are: text, json, yaml", s.Format)
	}
	if s.LinguistTimeout <= 0 {
		return fmt.Errorf("linguist timeout must be positive, got %s", s.LinguistTimeout)
	}
	return nil
}
