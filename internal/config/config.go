// Package config loads the named lookup profiles used by ioregctl.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/osx-registryio/registryio/pkg/types"
	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var defaultProfiles []byte

// Config is the parsed profiles file.
type Config struct {
	Profiles map[string]Profile `yaml:"profiles" json:"profiles"`
}

// Profile describes one registry entry to open.
type Profile struct {
	Description string   `yaml:"description" json:"description,omitempty"`
	Service     string   `yaml:"service"     json:"service"`
	Match       string   `yaml:"match"       json:"match,omitempty"`
	DVFSKeys    []string `yaml:"dvfs_keys"   json:"dvfs_keys,omitempty"`
}

// MatchKind returns the parsed match kind. Validate guarantees it parses.
func (p Profile) MatchKind() types.MatchKind {
	kind, _ := types.ParseMatchKind(p.Match)
	return kind
}

// Default returns the built-in profiles.
func Default() *Config {
	cfg, err := Parse(defaultProfiles)
	if err != nil {
		panic(fmt.Sprintf("built-in profiles: %v", err))
	}
	return cfg
}

// Load reads the profiles file at path and merges it over the built-in
// profiles. An empty path returns the built-ins.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	user, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for name, p := range user.Profiles {
		cfg.Profiles[name] = p
	}
	return cfg, nil
}

// Parse decodes and validates a profiles document.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = map[string]Profile{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks every profile.
func (c *Config) Validate() error {
	var errs []string
	for _, name := range c.Names() {
		p := c.Profiles[name]
		if p.Service == "" {
			errs = append(errs, fmt.Sprintf("profiles.%s.service is required", name))
		}
		if _, err := types.ParseMatchKind(p.Match); err != nil {
			errs = append(errs, fmt.Sprintf("profiles.%s.match: %v", name, err))
		}
		for i, k := range p.DVFSKeys {
			if k == "" {
				errs = append(errs, fmt.Sprintf("profiles.%s.dvfs_keys[%d] is empty", name, i))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Names returns the profile names in lexical order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profile returns the named profile.
func (c *Config) Profile(name string) (Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile %q (have %s)", name, strings.Join(c.Names(), ", "))
	}
	return p, nil
}
