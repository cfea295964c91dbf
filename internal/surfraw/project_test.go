// SPDX-License-Identifier: MPL-2.0

package surfraw

import (
	"maps"
	"testing"

	"surfconf/internal/config"
)

func TestProjectDefaultConfig(t *testing.T) {
	t.Parallel()

	// Every entry in the reserved table must resolve against the default
	// configuration; an unresolved path is a defect in the table itself.
	projected, err := Project(config.DefaultConfig())
	if err != nil {
		t.Fatalf("Project(DefaultConfig()) failed: %v", err)
	}

	want := map[string]string{
		"graphical":              "yes",
		"graphical_browser":      "/usr/bin/firefox",
		"graphical_browser_args": "none",
		"text_browser":           "/usr/bin/w3m",
		"text_browser_args":      "none",
	}

	if len(projected) != len(want) {
		t.Fatalf("Project returned %d entries, want %d", len(projected), len(want))
	}
	for key, wantStr := range want {
		v, ok := projected[key]
		if !ok {
			t.Errorf("projection missing key %q", key)
			continue
		}
		if got := Format(v); got != wantStr {
			t.Errorf("projected %q = %q, want %q", key, got, wantStr)
		}
	}
}

func TestProjectReflectsConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.UseGraphicalBrowser = false
	cfg.Graphical.Browser = "/opt/chromium/chromium"
	cfg.Graphical.BrowserArgs = []string{"-incognito"}
	cfg.Textual.Browser = "/usr/bin/lynx"

	projected, err := Project(cfg)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	checks := map[string]string{
		"graphical":              "no",
		"graphical_browser":      "/opt/chromium/chromium",
		"graphical_browser_args": `"-incognito"`,
		"text_browser":           "/usr/bin/lynx",
	}
	for key, want := range checks {
		if got := Format(projected[key]); got != want {
			t.Errorf("projected %q = %q, want %q", key, got, want)
		}
	}
}

func TestProjectIsPure(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()

	first, err := Project(cfg)
	if err != nil {
		t.Fatalf("first projection failed: %v", err)
	}
	second, err := Project(cfg)
	if err != nil {
		t.Fatalf("second projection failed: %v", err)
	}

	if !maps.EqualFunc(first, second, func(a, b Value) bool { return Format(a) == Format(b) }) {
		t.Errorf("projections differ: %v vs %v", first, second)
	}
}

func TestReservedPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key      string
		wantPath string
		wantOk   bool
	}{
		{key: "graphical", wantPath: "use_graphical_browser", wantOk: true},
		{key: "graphical_browser", wantPath: "graphical.browser", wantOk: true},
		{key: "graphical_browser_args", wantPath: "graphical.browser_args", wantOk: true},
		{key: "text_browser", wantPath: "textual.browser", wantOk: true},
		{key: "text_browser_args", wantPath: "textual.browser_args", wantOk: true},
		{key: "results", wantOk: false},
		{key: "", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			path, ok := ReservedPath(tt.key)
			if ok != tt.wantOk {
				t.Fatalf("ReservedPath(%q) ok = %v, want %v", tt.key, ok, tt.wantOk)
			}
			if path != tt.wantPath {
				t.Errorf("ReservedPath(%q) = %q, want %q", tt.key, path, tt.wantPath)
			}
		})
	}
}
