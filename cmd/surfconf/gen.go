// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"surfconf/internal/bookmarks"
	"surfconf/internal/conffile"
	"surfconf/internal/config"
	"surfconf/internal/issue"
	"surfconf/internal/surfraw"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// newGenCommand creates the `surfconf gen` command.
func newGenCommand(app *App) *cobra.Command {
	var (
		output   string
		toStdout bool
	)

	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Render and write surfraw's configuration",
		Long: `Render surfraw's conf from your surfconf configuration and write it to
~/.config/surfraw/conf. When a bookmarks file is configured, the bookmarks
document is rendered and written alongside it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd.Context(), app, output, toStdout)
		},
	}

	genCmd.Flags().StringVarP(&output, "output", "o", "", "write the conf to this path instead of surfraw's config dir")
	genCmd.Flags().BoolVar(&toStdout, "stdout", false, "print the conf to stdout instead of writing it")

	return genCmd
}

func runGen(ctx context.Context, app *App, output string, toStdout bool) error {
	doc, cfg, err := renderDocument(ctx, app)
	if err != nil {
		return err
	}

	if toStdout {
		fmt.Fprintln(app.Stdout, doc)
		return nil
	}

	confPath := output
	if confPath == "" {
		confPath, err = conffile.ConfPath()
		if err != nil {
			return err
		}
	}

	if err := app.Writer.WriteDocument(confPath, doc); err != nil {
		renderIssue(issue.ConfWriteFailedId, app.Stderr)
		return err
	}
	log.Debug("wrote surfraw conf", "path", confPath, "lines", strings.Count(doc, "\n")+1)
	fmt.Fprintf(app.Stdout, "%s %s\n", SuccessStyle.Render("Wrote"), confPath)

	if cfg.BookmarksFile != "" {
		if err := genBookmarks(app, cfg); err != nil {
			return err
		}
	}

	return nil
}

// renderDocument loads the configuration and renders the conf document,
// translating failures into their issue guidance.
func renderDocument(ctx context.Context, app *App) (string, *config.Config, error) {
	cfg, err := app.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId, app.Stderr)
		fmt.Fprintln(app.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return "", nil, err
	}
	log.Debug("loaded configuration", "settings", len(cfg.Settings))

	doc, err := surfraw.Render(cfg)
	if err != nil {
		if errors.Is(err, surfraw.ErrReservedSettingKey) {
			renderIssue(issue.ReservedKeyCollisionId, app.Stderr)
		}
		fmt.Fprintln(app.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return "", nil, err
	}

	if err := surfraw.CheckDocument(doc); err != nil {
		renderIssue(issue.ConfSyntaxErrorId, app.Stderr)
		fmt.Fprintln(app.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return "", nil, err
	}

	return doc, cfg, nil
}

func genBookmarks(app *App, cfg *config.Config) error {
	bm, err := bookmarks.Load(cfg.BookmarksFile.String())
	if err != nil {
		renderIssue(issue.BookmarksParseErrorId, app.Stderr)
		return err
	}

	bmPath, err := conffile.BookmarksPath()
	if err != nil {
		return err
	}

	if err := app.Writer.WriteDocument(bmPath, bm.Render()); err != nil {
		renderIssue(issue.ConfWriteFailedId, app.Stderr)
		return err
	}
	log.Debug("wrote surfraw bookmarks", "path", bmPath, "bookmarks", len(bm))
	fmt.Fprintf(app.Stdout, "%s %s\n", SuccessStyle.Render("Wrote"), bmPath)

	return nil
}
