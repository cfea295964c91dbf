// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"surfconf/internal/conffile"
	"surfconf/internal/config"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: all Cobra command handlers receive an App
	// reference and delegate through its fields.
	App struct {
		Config config.Provider
		Writer *conffile.Writer
		Stdout io.Writer
		Stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp. Tests can
	// supply fakes to isolate specific behavior.
	Dependencies struct {
		Config config.Provider
		Writer *conffile.Writer
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp builds an App, filling nil dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config: deps.Config,
		Writer: deps.Writer,
		Stdout: deps.Stdout,
		Stderr: deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Writer == nil {
		app.Writer = conffile.NewWriter()
	}
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	return app
}
