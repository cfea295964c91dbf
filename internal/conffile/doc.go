// SPDX-License-Identifier: MPL-2.0

// Package conffile places generated documents into surfraw's configuration
// directory. It resolves surfraw's XDG paths and writes each document with a
// provenance header and trailing newline; the rendering itself happens
// elsewhere and arrives here as finished text.
package conffile
