// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"surfconf/internal/config"
	"surfconf/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "surfconf",
		Short: "Generate surfraw's run-time configuration",
		Long: TitleStyle.Render("surfconf") + SubtitleStyle.Render(" - Generate surfraw's run-time configuration") + `

surfconf renders the conf file surfraw sources on every invocation.
Browsers are declared as structured configuration; everything else goes
into a free-form settings block. The two namespaces are checked for
collisions before a single line is written, and the rendered document is
parse-checked as POSIX shell.

Configuration lives in a CUE file and may reference a TOML bookmarks
file, which surfconf renders alongside the conf.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'surfconf config init' to create a default configuration
  2. Declare browsers and settings in config.cue
  3. Run 'surfconf gen' to write ~/.config/surfraw/conf

` + SubtitleStyle.Render("Examples:") + `
  surfconf gen              Render and write surfraw's conf
  surfconf gen --stdout     Preview the document without writing
  surfconf check            Validate without writing anything
  surfconf config show      Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/surfconf/config.cue)")

	app := NewApp(Dependencies{})

	// Add subcommands
	rootCmd.AddCommand(newGenCommand(app))
	rootCmd.AddCommand(newCheckCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig applies global flags before any command runs.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// renderIssue writes an issue's Markdown guidance to w. Rendering failures
// are swallowed; guidance is best-effort on top of the returned error.
func renderIssue(id issue.Id, w io.Writer) {
	if rendered, err := issue.Get(id).Render("dark"); err == nil {
		fmt.Fprint(w, rendered)
	}
}
