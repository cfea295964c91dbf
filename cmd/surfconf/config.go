// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"surfconf/internal/config"
	"surfconf/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `surfconf config` command tree.
// Subcommands that read configuration use the App's config Provider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage surfconf configuration",
		Long: `Manage surfconf configuration.

Configuration is stored in:
  - Linux: ~/.config/surfconf/config.cue
  - macOS: ~/Library/Application Support/surfconf/config.cue
  - Windows: %APPDATA%\surfconf\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: cfgFile})
			if err != nil {
				return err
			}

			fmt.Fprint(app.Stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId, app.Stderr)
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(app.Stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.Stdout)

	cfgDir, dirErr := config.ConfigDir()
	if dirErr == nil {
		cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
		if fileExistsCheck(cfgPath) {
			fmt.Fprintf(app.Stdout, "%s: %s\n", keyStyle.Render("Config file"), cfgPath)
		} else {
			fmt.Fprintf(app.Stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
		}
	} else {
		fmt.Fprintf(app.Stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(app.Stdout)

	fmt.Fprintf(app.Stdout, "%s: %s\n", keyStyle.Render("use_graphical_browser"),
		valueStyle.Render(fmt.Sprintf("%v", cfg.UseGraphicalBrowser)))

	showBrowser := func(name string, b config.BrowserConfig) {
		fmt.Fprintln(app.Stdout)
		fmt.Fprintf(app.Stdout, "%s:\n", keyStyle.Render(name))
		fmt.Fprintf(app.Stdout, "  browser: %s\n", valueStyle.Render(b.Browser.String()))
		fmt.Fprintf(app.Stdout, "  browser_args: %s\n", valueStyle.Render(fmt.Sprintf("%q", b.BrowserArgs)))
	}
	showBrowser("graphical", cfg.Graphical)
	showBrowser("textual", cfg.Textual)

	fmt.Fprintln(app.Stdout)
	fmt.Fprintf(app.Stdout, "%s:\n", keyStyle.Render("settings"))
	if len(cfg.Settings) == 0 {
		fmt.Fprintf(app.Stdout, "  %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		for _, key := range slices.Sorted(maps.Keys(cfg.Settings)) {
			fmt.Fprintf(app.Stdout, "  %s: %s\n", key, valueStyle.Render(fmt.Sprintf("%v", cfg.Settings[key])))
		}
	}

	if cfg.BookmarksFile != "" {
		fmt.Fprintln(app.Stdout)
		fmt.Fprintf(app.Stdout, "%s: %s\n", keyStyle.Render("bookmarks_file"), valueStyle.Render(cfg.BookmarksFile.String()))
	}

	return nil
}

func initConfig(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)

	if fileExistsCheck(cfgPath) {
		fmt.Fprintf(app.Stdout, "%s %s\n", WarningStyle.Render("Config file already exists:"), cfgPath)
		return nil
	}

	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}

	fmt.Fprintf(app.Stdout, "%s %s\n", SuccessStyle.Render("Created"), cfgPath)
	return nil
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Fprintln(app.Stdout, filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
