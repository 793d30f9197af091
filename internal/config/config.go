package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file name.
const FileName = "firextract.yaml"

// Config represents the top-level firextract.yaml configuration.
type Config struct {
	Chain     string          `yaml:"chain"`
	Accounts  []string        `yaml:"accounts"`
	Filter    FilterConfig    `yaml:"filter"`
	Runtime   RuntimeConfig   `yaml:"runtime"`
	Extractor ExtractorConfig `yaml:"extractor"`
}

// FilterConfig controls the record filter sent to the extractor.
type FilterConfig struct {
	Field string `yaml:"field"`
}

// RuntimeConfig locates the Python environment the extractor runs in.
type RuntimeConfig struct {
	EnvDir string `yaml:"env_dir"`
	Python string `yaml:"python"`
}

// ExtractorConfig locates the extractor script.
type ExtractorConfig struct {
	Path string `yaml:"path"`
}

// Load reads a firextract.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(chain string) *Config {
	return &Config{
		Chain: chain,
		Accounts: []string{
			"treasury1111",
			"payouts11111",
		},
		Filter: FilterConfig{
			Field: "to",
		},
		Runtime: RuntimeConfig{
			EnvDir: ".venv",
			Python: "python3",
		},
		Extractor: ExtractorConfig{
			Path: "main.py",
		},
	}
}

// Validate checks the configuration before a run. Account names end up
// single-quoted inside the filter expression, so quotes are rejected here.
func (c *Config) Validate() error {
	if len(c.Accounts) == 0 {
		return fmt.Errorf("config: at least one account is required")
	}
	seen := make(map[string]bool, len(c.Accounts))
	for _, a := range c.Accounts {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("config: blank account name")
		}
		if strings.ContainsAny(a, "'\"") {
			return fmt.Errorf("config: account %q contains a quote", a)
		}
		if seen[a] {
			return fmt.Errorf("config: duplicate account %q", a)
		}
		seen[a] = true
	}
	if c.Filter.Field == "" {
		return fmt.Errorf("config: filter field is required")
	}
	if c.Runtime.EnvDir == "" {
		return fmt.Errorf("config: runtime env_dir is required")
	}
	if c.Runtime.Python == "" {
		return fmt.Errorf("config: runtime python is required")
	}
	if c.Extractor.Path == "" {
		return fmt.Errorf("config: extractor path is required")
	}
	return nil
}
