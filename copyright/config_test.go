// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package copyright

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.astrophena.name/copyright-updater/testutil"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
pattern: "# (c) {years}, developers"
ignore_commits_before: 2020-01-01
license_file: COPYING
header_lines: 5
`)

	cfg, err := LoadConfig(path)
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, cfg.Pattern, "# (c) {years}, developers")
	testutil.AssertEqual(t, cfg.LicenseFile, "COPYING")
	testutil.AssertEqual(t, cfg.HeaderLines, 5)
	testutil.AssertEqual(t, cfg.IgnoreCommitsBefore.Year(), 2020)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "config.yaml", `pattern: "{years}"`)

	cfg, err := LoadConfig(path)
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, cfg.LicenseFile, "LICENSE")
	testutil.AssertEqual(t, cfg.HeaderLines, DefaultHeaderLines)
	testutil.AssertEqual(t, cfg.IgnoreCommitsBefore.IsZero(), true)
}

func TestLoadConfigMissingPattern(t *testing.T) {
	path := writeConfig(t, "config.yaml", `license_file: COPYING`)

	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "missing pattern") {
		t.Fatalf("want missing pattern error, got %v", err)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
pattern: "{years}"
patern_typo: oops
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("want error for unknown configuration key, got nil")
	}
}

func TestLoadConfigMalformedDate(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
pattern: "{years}"
ignore_commits_before: not-a-date
`)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("want error for malformed date, got nil")
	}
}

func TestFindConfig(t *testing.T) {
	t.Run("explicit wins", func(t *testing.T) {
		got, err := FindConfig("/some/explicit.yaml", t.TempDir())
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, got, "/some/explicit.yaml")
	})

	t.Run("default names in order", func(t *testing.T) {
		root := t.TempDir()
		yml := filepath.Join(root, ".copyright-updater.yml")
		if err := os.WriteFile(yml, []byte("pattern: \"{years}\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := FindConfig("", root)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, got, yml)

		yaml := filepath.Join(root, ".copyright-updater.yaml")
		if err := os.WriteFile(yaml, []byte("pattern: \"{years}\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err = FindConfig("", root)
		testutil.AssertEqual(t, err, nil)
		testutil.AssertEqual(t, got, yaml)
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := FindConfig("", t.TempDir()); err == nil {
			t.Fatal("want error when no configuration file exists, got nil")
		}
	})
}

func TestConfigCompile(t *testing.T) {
	cfg := &Config{Pattern: "# (c) {years}", HeaderLines: 3}
	p, err := cfg.Compile()
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, p.Render(Range{2024, 2024}), "# (c) 2024")

	cfg = &Config{Pattern: "no placeholder"}
	if _, err := cfg.Compile(); err == nil {
		t.Fatal("want error for pattern without placeholder, got nil")
	}
}

// Exercised indirectly by the driver: the ignore_commits_before value is
// an inclusive lower bound, so a date equal to a commit's timestamp keeps
// that commit.
func TestIgnoreCommitsBeforeParsesFullTimestamp(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
pattern: "{years}"
ignore_commits_before: 2020-06-01T12:00:00Z
`)

	cfg, err := LoadConfig(path)
	testutil.AssertEqual(t, err, nil)
	want := time.Date(2020, time.June, 1, 12, 0, 0, 0, time.UTC)
	testutil.AssertEqual(t, cfg.IgnoreCommitsBefore.Equal(want), true)
}
