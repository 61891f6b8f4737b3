// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Update-copyright keeps the year range inside copyright header comments in
sync with each file's git modification history.

It is meant to run as a git pre-commit hook: given the staged files, it
determines the first and last years each file was modified (pure renames
don't count), renders a copyright line from the configured template and
inserts or updates that line near the top of the file.

Usage:

	update-copyright [flags] [files...]

The tool is configured through a .copyright-updater.yaml (or .yml) file in
the repository root, or the file given with -config. Recognized keys:

  - pattern (required): the header template with a {years} placeholder,
    e.g. "// Copyright {years} ACME". The placeholder must appear exactly
    once.
  - ignore_commits_before (optional date): commits before it are excluded
    from year resolution.
  - license_file (optional, default LICENSE): this file's year range
    follows the whole repository's history instead of its own.
  - header_lines (optional, default 10): how many leading lines are
    searched for an existing header.

The exit status is zero unless a file lacked a required header (with
-required) or a fatal error occurred. -dry-run reports the changes that
would be made without writing anything; it never affects the exit status.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/copyright-updater/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
