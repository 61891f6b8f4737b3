// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package copyright

import (
	"errors"
	"strings"
)

// Placeholder is the marker in a header template that stands for the year
// expression.
const Placeholder = "{years}"

// DefaultHeaderLines is how many leading lines of a file are searched for
// an existing header. A license header is expected near the top; bounding
// the scan avoids false positives deep inside file content.
const DefaultHeaderLines = 10

// Errors reported by [NewPattern] for a malformed template.
var (
	ErrNoPlaceholder        = errors.New("pattern must contain " + Placeholder)
	ErrMultiplePlaceholders = errors.New("pattern must contain " + Placeholder + " exactly once")
)

// Pattern is a compiled header template. It locates an existing header
// line in file text and renders a replacement one.
type Pattern struct {
	prefix, suffix string
	scanLines      int
}

// NewPattern compiles a header template like "// Copyright {years} ACME".
// The template must contain the {years} placeholder exactly once.
// scanLines bounds the header search; a non-positive value means
// [DefaultHeaderLines].
func NewPattern(template string, scanLines int) (*Pattern, error) {
	switch strings.Count(template, Placeholder) {
	case 0:
		return nil, ErrNoPlaceholder
	case 1:
	default:
		return nil, ErrMultiplePlaceholders
	}
	if scanLines <= 0 {
		scanLines = DefaultHeaderLines
	}
	prefix, suffix, _ := strings.Cut(template, Placeholder)
	return &Pattern{prefix: prefix, suffix: suffix, scanLines: scanLines}, nil
}

// Render builds the header line for the given year range.
func (p *Pattern) Render(r Range) string {
	return p.prefix + r.String() + p.suffix
}

// Match describes a located header line.
type Match struct {
	// Line is the index of the header within the file's lines.
	Line int
	// YearsText is the raw text found in place of the {years}
	// placeholder. It is not validated here; see [ParseRange].
	YearsText string
}

// Find scans the first lines of a file for a header line: one that starts
// with the template's literal prefix and ends with its literal suffix.
// Only the topmost match within the scan bound is reported.
//
// The lines are expected to carry their original terminators, as produced
// by [SplitLines].
func (p *Pattern) Find(lines []string) (Match, bool) {
	limit := min(len(lines), p.scanLines)
	for i := range limit {
		text := strings.TrimRight(lines[i], "\r\n")
		if len(text) < len(p.prefix)+len(p.suffix) {
			continue
		}
		if !strings.HasPrefix(text, p.prefix) || !strings.HasSuffix(text, p.suffix) {
			continue
		}
		return Match{
			Line:      i,
			YearsText: text[len(p.prefix) : len(text)-len(p.suffix)],
		}, true
	}
	return Match{}, false
}
