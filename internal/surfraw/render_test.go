// SPDX-License-Identifier: MPL-2.0

package surfraw

import (
	"errors"
	"strings"
	"testing"

	"surfconf/internal/config"
)

func TestRenderDefaultsWithSettings(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Settings = map[string]any{
		"escape_url_args": true,
		"results":         15,
	}

	doc, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := strings.Join([]string{
		"SURFRAW_escape_url_args=yes",
		"SURFRAW_graphical=yes",
		"SURFRAW_graphical_browser=/usr/bin/firefox",
		"SURFRAW_graphical_browser_args=none",
		"SURFRAW_results=15",
		"SURFRAW_text_browser=/usr/bin/w3m",
		"SURFRAW_text_browser_args=none",
	}, "\n")

	if doc != want {
		t.Errorf("rendered document:\n%s\nwant:\n%s", doc, want)
	}
}

func TestRenderCollisionFailsWholesale(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Settings = map[string]any{
		"results":   10,
		"graphical": false,
	}

	doc, err := Render(cfg)
	if err == nil {
		t.Fatal("Render succeeded, want collision error")
	}
	if !errors.Is(err, ErrReservedSettingKey) {
		t.Errorf("error = %v, want ErrReservedSettingKey", err)
	}
	if doc != "" {
		t.Errorf("got partial document %q, want none", doc)
	}
}

func TestRenderBrowserArgsQuoted(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Graphical.BrowserArgs = []string{"-console", "-P", "profile"}

	doc, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	want := `SURFRAW_graphical_browser_args="-console -P profile"`
	if !strings.Contains(doc, want) {
		t.Errorf("document lacks %q:\n%s", want, doc)
	}
}

func TestRenderOnlyReservedLinesWithoutSettings(t *testing.T) {
	t.Parallel()

	doc, err := Render(config.DefaultConfig())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	lines := strings.Split(doc, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), doc)
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "SURFRAW_") {
			t.Errorf("line %q lacks the SURFRAW_ prefix", line)
		}
	}
	if strings.HasSuffix(doc, "\n") {
		t.Error("document carries a trailing newline")
	}
}

func TestRenderDeterministic(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Settings = map[string]any{
		"zulu":     "last",
		"alpha":    "first",
		"results":  30,
		"quiet":    true,
		"Mixed":    "case",
		"mid_key":  7,
		"mid_key2": false,
	}

	first, err := Render(cfg)
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	for range 20 {
		again, err := Render(cfg)
		if err != nil {
			t.Fatalf("repeat render failed: %v", err)
		}
		if again != first {
			t.Fatalf("renders differ:\n%s\nvs:\n%s", first, again)
		}
	}
}

func TestRenderPreservesKeyCase(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Settings = map[string]any{"customKey": "v"}

	doc, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(doc, "SURFRAW_customKey=v") {
		t.Errorf("document lacks case-preserved key:\n%s", doc)
	}
}

func TestRenderRejectsUnsupportedValue(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Settings = map[string]any{"ratio": 1.5}

	if _, err := Render(cfg); !errors.Is(err, ErrUnsupportedSettingValue) {
		t.Errorf("error = %v, want ErrUnsupportedSettingValue", err)
	}
}

func TestSettingsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Settings = map[string]any{
		"results": 15,
		"quiet":   true,
		"lang":    "en",
	}

	settings, err := SettingsFromConfig(cfg)
	if err != nil {
		t.Fatalf("SettingsFromConfig failed: %v", err)
	}

	want := map[string]string{"results": "15", "quiet": "yes", "lang": "en"}
	if len(settings) != len(want) {
		t.Fatalf("got %d settings, want %d", len(settings), len(want))
	}
	for key, wantStr := range want {
		if got := Format(settings[key]); got != wantStr {
			t.Errorf("settings[%q] = %q, want %q", key, got, wantStr)
		}
	}
}
