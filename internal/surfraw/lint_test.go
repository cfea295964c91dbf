// SPDX-License-Identifier: MPL-2.0

package surfraw

import (
	"errors"
	"testing"

	"surfconf/internal/config"
)

func TestCheckDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "clean document",
			doc:  "SURFRAW_graphical=yes\nSURFRAW_results=15",
		},
		{
			name: "quoted args",
			doc:  `SURFRAW_graphical_browser_args="-console -P profile"`,
		},
		{
			name: "empty document",
			doc:  "",
		},
		{
			name:    "unbalanced double quote",
			doc:     `SURFRAW_lang=en"`,
			wantErr: true,
		},
		{
			name:    "unbalanced single quote",
			doc:     "SURFRAW_x='broken",
			wantErr: true,
		},
		{
			name:    "unterminated substitution",
			doc:     "SURFRAW_x=$(echo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckDocument(tt.doc)
			if tt.wantErr {
				if !errors.Is(err, ErrDocumentSyntax) {
					t.Errorf("CheckDocument(%q) = %v, want ErrDocumentSyntax", tt.doc, err)
				}
				return
			}
			if err != nil {
				t.Errorf("CheckDocument(%q) failed: %v", tt.doc, err)
			}
		})
	}
}

func TestCheckDocumentCatchesBrokenTextValue(t *testing.T) {
	t.Parallel()

	// A text setting carrying an unbalanced quote renders fine but would
	// break surfraw the moment it sources the conf with /bin/sh.
	cfg := config.DefaultConfig()
	cfg.Settings = map[string]any{"lang": `en"broken`}

	doc, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if err := CheckDocument(doc); !errors.Is(err, ErrDocumentSyntax) {
		t.Errorf("CheckDocument = %v, want ErrDocumentSyntax", err)
	}
}

func TestCheckDocumentAcceptsRenderedDefaults(t *testing.T) {
	t.Parallel()

	doc, err := Render(config.DefaultConfig())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if err := CheckDocument(doc); err != nil {
		t.Errorf("CheckDocument on rendered defaults failed: %v", err)
	}
}
