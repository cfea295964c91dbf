// SPDX-License-Identifier: MPL-2.0

package surfraw

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// ErrDocumentSyntax is the sentinel error wrapped by document lint failures.
var ErrDocumentSyntax = errors.New("conf document is not valid shell")

// CheckDocument parses a rendered conf document as POSIX shell. surfraw
// sources the conf with /bin/sh, so a value that breaks shell parsing (an
// unbalanced quote in a text setting, say) would break every surfraw
// invocation; catching it here keeps the broken document from ever being
// written.
func CheckDocument(doc string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	if _, err := parser.Parse(strings.NewReader(doc), "surfraw.conf"); err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentSyntax, err)
	}
	return nil
}
