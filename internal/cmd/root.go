package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lingust/lingust/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "lingust",
	Short: "Language identification for files and directory trees",
	Long: `Lingust identifies the programming languages present in a file or
directory tree. A single file resolves to one best-guess label; a directory
yields a percentage breakdown across the detected languages.

When github-linguist is installed its breakdown is preferred; otherwise the
built-in classifier (go-enry, the Go port of GitHub Linguist) is used.`,
	Version: version.Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
