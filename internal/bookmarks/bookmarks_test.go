// SPDX-License-Identifier: MPL-2.0

package bookmarks

import (
	"errors"
	"path/filepath"
	"testing"

	"surfconf/internal/testutil"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    int
		wantErr error
	}{
		{
			name: "valid bookmarks",
			data: "wiki = \"https://en.wikipedia.org\"\nddg = \"https://duckduckgo.com\"\n",
			want: 2,
		},
		{
			name: "empty document",
			data: "",
			want: 0,
		},
		{
			name:    "url with spaces",
			data:    "wiki = \"https://example.org/a page\"\n",
			wantErr: ErrInvalidBookmarkURL,
		},
		{
			name:    "empty url",
			data:    "wiki = \"\"\n",
			wantErr: ErrInvalidBookmarkURL,
		},
		{
			name:    "name with spaces",
			data:    "\"my wiki\" = \"https://example.org\"\n",
			wantErr: ErrInvalidBookmarkName,
		},
		{
			name:    "broken toml",
			data:    "wiki = [",
			wantErr: nil, // any error accepted, checked below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse([]byte(tt.data))
			if tt.name == "broken toml" {
				if err == nil {
					t.Fatal("Parse accepted broken TOML")
				}
				return
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("Parse returned %d bookmarks, want %d", len(got), tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bookmarks.toml")
	testutil.MustWriteFile(t, path, "wiki = \"https://en.wikipedia.org\"\n")

	bm, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if bm["wiki"] != "https://en.wikipedia.org" {
		t.Errorf("bookmark wiki = %q", bm["wiki"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load of missing file succeeded, want error")
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	bm := Bookmarks{
		"wiki": "https://en.wikipedia.org",
		"ddg":  "https://duckduckgo.com",
		"arch": "https://wiki.archlinux.org",
	}

	want := "arch https://wiki.archlinux.org\n" +
		"ddg https://duckduckgo.com\n" +
		"wiki https://en.wikipedia.org"

	if got := bm.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}

	// Determinism: repeated renders are byte-identical.
	first := bm.Render()
	for range 10 {
		if again := bm.Render(); again != first {
			t.Fatalf("renders differ: %q vs %q", first, again)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()

	if got := (Bookmarks{}).Render(); got != "" {
		t.Errorf("Render() of empty bookmarks = %q, want empty", got)
	}
}
