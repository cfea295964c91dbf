// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newCheckCommand creates the `surfconf check` command.
func newCheckCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration without writing anything",
		Long: `Load the configuration, render surfraw's conf in memory, and run every
validation gate: the reserved-key collision check and the shell syntax
check on the rendered document. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := renderDocument(cmd.Context(), app)
			if err != nil {
				// Distinct exit code so scripts can tell a failed
				// validation from a usage error.
				return &ExitError{Code: 2, Err: err}
			}
			lines := strings.Count(doc, "\n") + 1
			fmt.Fprintf(app.Stdout, "%s conf renders cleanly (%d settings)\n",
				SuccessStyle.Render("OK"), lines)
			return nil
		},
	}
}
