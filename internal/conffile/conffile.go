// SPDX-License-Identifier: MPL-2.0

package conffile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"surfconf/internal/testutil"
)

const (
	// surfrawDirName is surfraw's directory under $XDG_CONFIG_HOME.
	surfrawDirName = "surfraw"
	// ConfFileName is surfraw's main configuration file name.
	ConfFileName = "conf"
	// BookmarksFileName is surfraw's bookmarks file name.
	BookmarksFileName = "bookmarks"
)

// surfrawDirOverride allows tests to redirect the surfraw directory lookup.
var surfrawDirOverride string

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	surfrawDirOverride = ""
}

// SetSurfrawDirOverride sets a custom surfraw configuration directory.
// Primarily intended for testing.
func SetSurfrawDirOverride(dir string) {
	surfrawDirOverride = dir
}

// SurfrawDir returns surfraw's configuration directory:
// $XDG_CONFIG_HOME/surfraw, defaulting to ~/.config/surfraw. surfraw itself
// only runs on Unix-like systems, so no Windows/macOS special-casing applies.
func SurfrawDir() (string, error) {
	if surfrawDirOverride != "" {
		return surfrawDirOverride, nil
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}

	return filepath.Join(configDir, surfrawDirName), nil
}

// ConfPath returns the path of surfraw's main configuration file.
func ConfPath() (string, error) {
	dir, err := SurfrawDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfFileName), nil
}

// BookmarksPath returns the path of surfraw's bookmarks file.
func BookmarksPath() (string, error) {
	dir, err := SurfrawDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, BookmarksFileName), nil
}

// Writer persists rendered documents. The clock feeds the provenance header,
// so tests can pin it with a FakeClock and assert byte-exact output.
type Writer struct {
	clock testutil.Clock
}

// NewWriter creates a Writer using the system clock.
func NewWriter() *Writer {
	return &Writer{clock: testutil.RealClock{}}
}

// NewWriterWithClock creates a Writer with an explicit clock.
func NewWriterWithClock(clock testutil.Clock) *Writer {
	return &Writer{clock: clock}
}

// Header returns the provenance comment prepended to every written document.
func (w *Writer) Header() string {
	return fmt.Sprintf("# Generated by surfconf on %s. Do not edit by hand.\n",
		w.clock.Now().UTC().Format(time.RFC3339))
}

// WriteDocument writes body to path with the provenance header and a trailing
// newline, creating parent directories as needed.
func (w *Writer) WriteDocument(path, body string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	content := w.Header() + body + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
