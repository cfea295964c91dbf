// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for surfconf.
//
// This package implements the Cobra command hierarchy for the surfconf CLI:
// the root command, document generation and checking, and configuration
// management.
package cmd
