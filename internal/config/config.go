// Package config resolves the handful of settings a teardown run needs:
// the project prefix everything derives from, how to reach the provider,
// and the failure policy.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// maxProjectLen keeps every derived bucket name under the 63-character
// bucket limit; "-processed" is the longest bucket suffix.
const maxProjectLen = 53

var projectPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// Config holds one run's settings. Command-line flags override file values.
type Config struct {
	// Project is the fixed name prefix every resource identifier derives
	// from. It must match the provisioning stack's naming exactly.
	Project string `yaml:"project"`
	// Region overrides the SDK's default region resolution.
	Region string `yaml:"region,omitempty"`
	// Profile selects a shared credentials profile.
	Profile string `yaml:"profile,omitempty"`
	// ContinueOnError keeps deleting after a resource fails instead of
	// stopping at the first failure.
	ContinueOnError bool `yaml:"continue_on_error,omitempty"`
}

// Load reads and parses a YAML config file. Unknown keys are rejected so a
// misspelled setting fails loudly instead of silently falling back to a
// default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// An empty file is a valid starting point; flags can supply the rest.
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that the project prefix is present and safe to derive
// identifiers from. Bucket naming is the binding constraint: lowercase
// letters, digits and hyphens, with no hyphen at either end.
func (c *Config) Validate() error {
	if c.Project == "" {
		return errors.New("project is required (set --project or the config file's project key)")
	}
	if len(c.Project) > maxProjectLen {
		return fmt.Errorf("project %q is too long: derived bucket names must stay within 63 characters, so the prefix is capped at %d", c.Project, maxProjectLen)
	}
	if !projectPattern.MatchString(c.Project) {
		return fmt.Errorf("invalid project %q: use lowercase letters, digits and hyphens, starting and ending with a letter or digit", c.Project)
	}
	return nil
}
