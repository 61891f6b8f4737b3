// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package copyright locates, parses and rewrites the year range inside
// copyright header comments.
package copyright

import (
	"slices"
	"strings"
)

// Update computes the minimal header edit for content.
//
// years is the range resolved from version control; hasYears reports
// whether any history was found at all. Every byte outside the single
// affected line is preserved exactly. Update never touches the
// filesystem; writing the returned content back is the caller's job.
//
// An existing header whose year expression doesn't parse is treated the
// same as a missing header: a fresh one is inserted and the garbled line
// is left untouched.
func Update(content string, p *Pattern, years Range, hasYears, required bool) (string, Outcome) {
	lines := SplitLines(content)

	if m, found := p.Find(lines); found {
		if _, valid := ParseRange(m.YearsText); valid {
			if !hasYears {
				// Cannot compute a target without history.
				return content, NoHistory
			}
			if m.YearsText == years.String() {
				return content, Unchanged
			}
			// Covers both a wrong range and an equal but
			// non-canonical one (e.g. "2020-2020"): any write
			// normalizes to the canonical form.
			lines[m.Line] = p.Render(years) + lineEnding(lines[m.Line])
			return strings.Join(lines, ""), Updated
		}
	}

	if !hasYears {
		if required {
			return content, MissingAndRequired
		}
		return content, NoHistory
	}
	return insertHeader(lines, p.Render(years)), Inserted
}

// SplitLines splits content into lines that keep their original
// terminators, so that joining them back reproduces content exactly.
func SplitLines(content string) []string {
	return strings.SplitAfter(content, "\n")
}

func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return "\r\n"
	}
	if strings.HasSuffix(line, "\n") {
		return "\n"
	}
	return ""
}

// insertHeader places the header as the first line, or right after a
// shebang line so the kernel still sees the interpreter directive first.
// The line ending style of the file's first line is reused.
func insertHeader(lines []string, header string) string {
	eol := "\n"
	if len(lines) > 0 && strings.HasSuffix(lines[0], "\r\n") {
		eol = "\r\n"
	}

	at := 0
	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		at = 1
		if lineEnding(lines[0]) == "" {
			// Shebang-only file without a trailing newline.
			lines[0] += eol
		}
	}

	lines = slices.Insert(slices.Clone(lines), at, header+eol)
	return strings.Join(lines, "")
}
