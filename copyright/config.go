// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package copyright

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigNames are the default configuration file names, tried in order at
// the repository root.
var ConfigNames = []string{".copyright-updater.yaml", ".copyright-updater.yml"}

// Config is the tool's on-disk configuration.
type Config struct {
	// Pattern is the header template containing the {years}
	// placeholder, e.g. "// Copyright {years} ACME".
	Pattern string `yaml:"pattern"`
	// IgnoreCommitsBefore, when set, excludes older commits from year
	// resolution.
	IgnoreCommitsBefore time.Time `yaml:"ignore_commits_before"`
	// LicenseFile names the file whose year range follows the whole
	// repository's history instead of its own path history.
	LicenseFile string `yaml:"license_file"`
	// HeaderLines bounds the header search to that many leading lines.
	HeaderLines int `yaml:"header_lines"`
}

// FindConfig returns the configuration file path: explicit if given,
// otherwise the first of [ConfigNames] that exists in root.
func FindConfig(explicit, root string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, name := range ConfigNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no configuration file found: searched for %s in %s",
		strings.Join(ConfigNames, ", "), root)
}

// LoadConfig reads and validates a configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LicenseFile: "LICENSE",
		HeaderLines: DefaultHeaderLines,
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	if cfg.Pattern == "" {
		return nil, fmt.Errorf("invalid configuration %s: missing pattern", path)
	}
	return cfg, nil
}

// Compile builds the header pattern from the configured template.
func (c *Config) Compile() (*Pattern, error) {
	return NewPattern(c.Pattern, c.HeaderLines)
}
