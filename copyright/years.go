// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package copyright

import (
	"strconv"
	"strings"
)

// Range is an inclusive range of years. A single year is a range whose
// First and Last are equal.
type Range struct {
	First, Last int
}

// String renders the canonical year expression: the bare year when First
// equals Last, "First-Last" otherwise.
func (r Range) String() string {
	if r.First == r.Last {
		return strconv.Itoa(r.First)
	}
	return strconv.Itoa(r.First) + "-" + strconv.Itoa(r.Last)
}

// ParseRange parses a year expression: either a bare year ("2021") or a
// hyphenated range ("2021-2024"), with optional whitespace around the
// hyphen. It is total: malformed input, including a reversed range,
// reports ok=false instead of failing.
func ParseRange(s string) (r Range, ok bool) {
	s = strings.TrimSpace(s)
	if first, last, found := strings.Cut(s, "-"); found {
		from, okFrom := parseYear(first)
		to, okTo := parseYear(last)
		if !okFrom || !okTo || from > to {
			return Range{}, false
		}
		return Range{First: from, Last: to}, true
	}
	y, okYear := parseYear(s)
	if !okYear {
		return Range{}, false
	}
	return Range{First: y, Last: y}, true
}

func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return y, true
}
