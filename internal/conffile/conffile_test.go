// SPDX-License-Identifier: MPL-2.0

package conffile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"surfconf/internal/testutil"
)

func TestSurfrawDirRespectsXDG(t *testing.T) {
	cleanup := testutil.MustSetenv(t, "XDG_CONFIG_HOME", "/tmp/xdg-test")
	defer cleanup()

	dir, err := SurfrawDir()
	if err != nil {
		t.Fatalf("SurfrawDir failed: %v", err)
	}
	if dir != "/tmp/xdg-test/surfraw" {
		t.Errorf("SurfrawDir() = %q, want %q", dir, "/tmp/xdg-test/surfraw")
	}
}

func TestSurfrawDirOverride(t *testing.T) {
	SetSurfrawDirOverride("/custom/surfraw")
	defer Reset()

	dir, err := SurfrawDir()
	if err != nil {
		t.Fatalf("SurfrawDir failed: %v", err)
	}
	if dir != "/custom/surfraw" {
		t.Errorf("SurfrawDir() = %q, want override", dir)
	}

	confPath, err := ConfPath()
	if err != nil {
		t.Fatalf("ConfPath failed: %v", err)
	}
	if confPath != "/custom/surfraw/conf" {
		t.Errorf("ConfPath() = %q", confPath)
	}

	bmPath, err := BookmarksPath()
	if err != nil {
		t.Fatalf("BookmarksPath failed: %v", err)
	}
	if bmPath != "/custom/surfraw/bookmarks" {
		t.Errorf("BookmarksPath() = %q", bmPath)
	}
}

func TestWriterHeader(t *testing.T) {
	t.Parallel()

	clock := testutil.NewFakeClock(time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC))
	w := NewWriterWithClock(clock)

	want := "# Generated by surfconf on 2024-06-01T12:30:00Z. Do not edit by hand.\n"
	if got := w.Header(); got != want {
		t.Errorf("Header() = %q, want %q", got, want)
	}
}

func TestWriteDocument(t *testing.T) {
	t.Parallel()

	clock := testutil.NewFakeClock(time.Time{})
	w := NewWriterWithClock(clock)

	path := filepath.Join(t.TempDir(), "nested", "dir", "conf")
	if err := w.WriteDocument(path, "SURFRAW_graphical=yes\nSURFRAW_results=15"); err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written document: %v", err)
	}

	want := "# Generated by surfconf on 2020-01-01T00:00:00Z. Do not edit by hand.\n" +
		"SURFRAW_graphical=yes\nSURFRAW_results=15\n"
	if string(data) != want {
		t.Errorf("written document:\n%q\nwant:\n%q", string(data), want)
	}
}

func TestWriteDocumentOverwrites(t *testing.T) {
	t.Parallel()

	w := NewWriterWithClock(testutil.NewFakeClock(time.Time{}))
	path := filepath.Join(t.TempDir(), "conf")

	if err := w.WriteDocument(path, "SURFRAW_a=1"); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := w.WriteDocument(path, "SURFRAW_b=2"); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written document: %v", err)
	}
	if string(data) != "# Generated by surfconf on 2020-01-01T00:00:00Z. Do not edit by hand.\nSURFRAW_b=2\n" {
		t.Errorf("document after overwrite:\n%q", string(data))
	}
}
