package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lingust/lingust/internal/aggregator"
	"github.com/lingust/lingust/internal/codestats"
	"github.com/lingust/lingust/internal/config"
	"github.com/lingust/lingust/internal/git"
	"github.com/lingust/lingust/internal/linguist"
	"github.com/lingust/lingust/internal/metadata"
	"github.com/lingust/lingust/internal/progress"
	"github.com/lingust/lingust/internal/provider"
	"github.com/lingust/lingust/internal/types"
	"github.com/lingust/lingust/internal/version"
)

var settings *config.Settings

var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Identify the language(s) of a file or directory",
	Long: `Detect resolves one language label for a single file, or a percentage
breakdown across languages for a directory tree.

Examples:
  lingust detect main.py
  lingust detect /path/to/project
  lingust detect --format json /path/to/project
  lingust detect --exclude vendor --exclude "*.log" /path/to/project
  lingust detect --no-linguist /path/to/project`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	// Initialize settings with defaults and environment variables
	settings = config.LoadSettings()

	detectCmd.Flags().StringVarP(&settings.Format, "format", "f", settings.Format, "Output format: text, json, or yaml")
	detectCmd.Flags().StringVarP(&settings.OutputFile, "output", "o", settings.OutputFile, "Output file path (default: stdout)")
	detectCmd.Flags().BoolVarP(&settings.Verbose, "verbose", "v", settings.Verbose, "Show per-file progress on stderr")
	detectCmd.Flags().StringSliceVar(&settings.ExcludePatterns, "exclude", settings.ExcludePatterns, "Patterns to exclude (supports glob patterns, can be specified multiple times)")
	detectCmd.Flags().BoolVar(&settings.NoLinguist, "no-linguist", settings.NoLinguist, "Skip github-linguist even when it is installed")
	detectCmd.Flags().DurationVar(&settings.LinguistTimeout, "linguist-timeout", settings.LinguistTimeout, "Timeout for one github-linguist invocation")
	detectCmd.Flags().BoolVar(&settings.NoCodeStats, "no-code-stats", settings.NoCodeStats, "Disable per-language line statistics")

	detectCmd.Flags().String("log-level", settings.LogLevel.String(), "Log level: debug, info, warn, error")
	detectCmd.Flags().String("log-format", settings.LogFormat, "Log format: text or json")
	detectCmd.Flags().String("log-file", settings.LogFile, "Log file path (default: stderr)")
}

// configureLogging sets up logging based on command flags
func configureLogging(cmd *cobra.Command) *slog.Logger {
	logLevel, _ := cmd.Flags().GetString("log-level")
	logFormat, _ := cmd.Flags().GetString("log-format")
	logFile, _ := cmd.Flags().GetString("log-file")

	if level, err := config.ParseLogLevel(logLevel); err == nil {
		settings.LogLevel = level
	}
	settings.LogFormat = logFormat
	settings.LogFile = logFile

	return settings.ConfigureLogger()
}

// resolvePath resolves and validates the target path from args
func resolvePath(args []string, logger *slog.Logger) (absPath string, isDir bool) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	path = strings.TrimSpace(path)
	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.Error("Invalid path", "error", err)
		os.Exit(1)
	}

	// A missing root is the one per-path condition reported as a failure
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		logger.Error("Path does not exist", "path", absPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: cannot access %s\n", absPath)
		os.Exit(1)
	}
	return absPath, fileInfo.IsDir()
}

func runDetect(cmd *cobra.Command, args []string) {
	logger := configureLogging(cmd)
	absPath, isDir := resolvePath(args, logger)

	settings.Format = strings.ToLower(settings.Format)
	if err := settings.Validate(); err != nil {
		logger.Error("Invalid settings", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for i, pattern := range settings.ExcludePatterns {
		settings.ExcludePatterns[i] = strings.TrimSpace(pattern)
	}

	// Provider is rooted at the directory being scanned, or the parent for a
	// single file
	rootPath := absPath
	if !isDir {
		rootPath = filepath.Dir(absPath)
	}
	p := provider.NewFSProvider(rootPath)

	var prog *progress.Progress
	if settings.Verbose {
		prog = progress.New(progress.NewSimpleHandler(os.Stderr))
	}

	stats := codestats.NewAnalyzer(isDir && !settings.NoCodeStats)

	var collab aggregator.Collaborator
	if !settings.NoLinguist {
		collab = linguist.NewRunner(settings.LinguistTimeout, logger)
	}

	agg := aggregator.New(p, aggregator.Options{
		ExcludePatterns: settings.ExcludePatterns,
		Progress:        prog,
		CodeStats:       stats,
		Collaborator:    collab,
		Logger:          logger,
	})

	meta := metadata.New(absPath, version.Version)
	if isDir {
		meta.SetFormat(metadata.FormatTree)
		meta.Git = git.GetInfo(absPath)
	} else {
		meta.SetFormat(metadata.FormatSingle)
	}

	start := time.Now()
	result, err := agg.Detect(context.Background(), absPath, isDir)
	if err != nil {
		logger.Error("Detection failed", "path", absPath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	meta.SetDuration(time.Since(start))
	meta.SetCounts(result.FileCount, result.LanguageCount)
	meta.SetSource(result.Source)

	out := &DetectResult{
		Breakdown: result.Breakdown,
		Metadata:  meta,
		CodeStats: stats.Stats(),
	}
	OutputToFile(out, settings.Format, settings.OutputFile)
}

// DetectResult is the output of the detect command
type DetectResult struct {
	Breakdown types.Breakdown
	Metadata  *metadata.ScanMetadata
	CodeStats *codestats.CodeStats
}

// detectResultJSON is the marshaled shape of a detection result
type detectResultJSON struct {
	Breakdown []types.BreakdownEntry `json:"breakdown" yaml:"breakdown"`
	Metadata  *metadata.ScanMetadata `json:"metadata" yaml:"metadata"`
	CodeStats *codestats.CodeStats   `json:"code_stats,omitempty" yaml:"code_stats,omitempty"`
}

func (r *DetectResult) ToJSON() interface{} {
	return &detectResultJSON{
		Breakdown: r.Breakdown.Entries(),
		Metadata:  r.Metadata,
		CodeStats: r.CodeStats,
	}
}

var (
	languageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	percentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func (r *DetectResult) ToText(w io.Writer) {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}

	if r.Metadata != nil && r.Metadata.Format == metadata.FormatSingle {
		for _, entry := range r.Breakdown.Entries() {
			label := entry.Label
			if color {
				label = languageStyle.Render(label)
			}
			fmt.Fprintf(w, "Language: %s\n", label)
		}
		return
	}

	if len(r.Breakdown) == 0 {
		fmt.Fprintln(w, "No files found")
		return
	}

	for _, entry := range r.Breakdown.Entries() {
		pct := fmt.Sprintf("%5.1f%%", entry.Percentage)
		if color {
			pct = percentStyle.Render(pct)
		}
		fmt.Fprintf(w, "%s | %s\n", pct, entry.Label)
	}
}
