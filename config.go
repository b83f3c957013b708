package labsh

import (
	"context"
	"fmt"

	"github.com/viant/labsh/policy"
	"github.com/viant/labsh/service/dao/record/fs"
	"github.com/viant/labsh/service/meta"
)

// Config is a serialisable representation of the lab configuration. It can
// be populated from JSON or YAML. The zero-value is useful – all nested
// fields inherit their package defaults.
type Config struct {
	Policy   *policy.Config `json:"policy,omitempty" yaml:"policy,omitempty"`
	Store    StoreConfig    `json:"store" yaml:"store"`
	Terminal TerminalConfig `json:"terminal" yaml:"terminal"`
	Tracing  TracingConfig  `json:"tracing" yaml:"tracing"`
	Audit    AuditConfig    `json:"audit" yaml:"audit"`
}

// StoreConfig selects where saved sessions live. An empty URL keeps them in
// memory.
type StoreConfig struct {
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

type TerminalConfig struct {
	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	User     string `json:"user,omitempty" yaml:"user,omitempty"`
}

type TracingConfig struct {
	Enabled        bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	ServiceName    string `json:"serviceName,omitempty" yaml:"serviceName,omitempty"`
	ServiceVersion string `json:"serviceVersion,omitempty" yaml:"serviceVersion,omitempty"`
	OutputFile     string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

// AuditConfig enables the in-memory audit queue of executed command lines.
type AuditConfig struct {
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Buffer  int  `json:"buffer,omitempty" yaml:"buffer,omitempty"`
}

// DefaultConfig returns a Config populated with the package defaults.
// Callers may modify the returned struct before passing it to WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Policy: policy.ToConfig(policy.Default()),
		Store:  StoreConfig{Format: string(fs.FormatJSON)},
		Tracing: TracingConfig{
			ServiceName:    "labsh",
			ServiceVersion: "0.1.0",
		},
		Audit: AuditConfig{Buffer: 1000},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	switch fs.Format(c.Store.Format) {
	case "", fs.FormatJSON, fs.FormatYAML:
	default:
		return fmt.Errorf("store.format must be json or yaml: %q", c.Store.Format)
	}
	if c.Audit.Buffer < 0 {
		return fmt.Errorf("audit.buffer must be >= 0")
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing.serviceName is required when tracing is enabled")
	}
	return nil
}

// LoadConfig reads a YAML or JSON configuration from any afs URL over
// DefaultConfig and validates it. ${env.KEY} expressions are expanded.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	ret := DefaultConfig()
	if err := meta.New(nil).Load(ctx, URL, ret); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}
