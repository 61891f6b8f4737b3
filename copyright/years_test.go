// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package copyright

import (
	"testing"

	"go.astrophena.name/copyright-updater/testutil"
)

func TestRangeString(t *testing.T) {
	cases := map[string]struct {
		r    Range
		want string
	}{
		"single year":     {Range{2021, 2021}, "2021"},
		"range":           {Range{2021, 2024}, "2021-2024"},
		"adjacent years":  {Range{2023, 2024}, "2023-2024"},
		"very old single": {Range{99, 99}, "99"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.r.String(), tc.want)
		})
	}
}

func TestParseRange(t *testing.T) {
	cases := map[string]struct {
		in   string
		want Range
		ok   bool
	}{
		"single year":            {"2021", Range{2021, 2021}, true},
		"range":                  {"2021-2024", Range{2021, 2024}, true},
		"equal range":            {"2020-2020", Range{2020, 2020}, true},
		"spaces around hyphen":   {"2021 - 2024", Range{2021, 2024}, true},
		"surrounding whitespace": {" 2021 ", Range{2021, 2021}, true},
		"empty":                  {"", Range{}, false},
		"text":                   {"MMXX", Range{}, false},
		"reversed range":         {"2023-2020", Range{}, false},
		"missing to":             {"2021-", Range{}, false},
		"missing from":           {"-2021", Range{}, false},
		"non-numeric component":  {"2021-20x4", Range{}, false},
		"signed year":            {"+2021", Range{}, false},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseRange(tc.in)
			testutil.AssertEqual(t, ok, tc.ok)
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

// Formatting a parsed expression yields its canonical form, and parsing
// that canonical form roundtrips.
func TestCanonicalizationIdempotent(t *testing.T) {
	for _, in := range []string{"2021", "2021-2024", "2020-2020", "2021 - 2024", " 2023 "} {
		r, ok := ParseRange(in)
		if !ok {
			t.Fatalf("ParseRange(%q) unexpectedly invalid", in)
		}
		canonical := r.String()
		r2, ok := ParseRange(canonical)
		testutil.AssertEqual(t, ok, true)
		testutil.AssertEqual(t, r2, r)
		testutil.AssertEqual(t, r2.String(), canonical)
	}
}
