package posts

import (
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-posts/pkg/interfaces"
	"github.com/goliatone/go-posts/schema"
)

// Config drives engine construction. Callers should start from DefaultConfig;
// LoadConfig layers a YAML file over it.
type Config struct {
	// ContentDir is the root directory holding post documents.
	ContentDir string `yaml:"content_dir"`
	// Pattern limits discovery to matching files (defaults to "*.md").
	Pattern string `yaml:"pattern"`
	// Recursive controls traversal into sub-directories.
	Recursive bool `yaml:"recursive"`
	// Concurrency bounds the parallel parse/validate stage. Values below 2
	// process documents sequentially.
	Concurrency int `yaml:"concurrency"`

	Render  RenderConfig  `yaml:"render"`
	Schema  SchemaConfig  `yaml:"schema"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig controls body rendering.
type RenderConfig struct {
	Enabled    bool     `yaml:"enabled"`
	Extensions []string `yaml:"extensions"`
	HardWraps  bool     `yaml:"hard_wraps"`
	SafeMode   bool     `yaml:"safe_mode"`
}

// Options maps the config onto renderer options.
func (c RenderConfig) Options() interfaces.RenderOptions {
	return interfaces.RenderOptions{
		Extensions: append([]string(nil), c.Extensions...),
		HardWraps:  c.HardWraps,
		SafeMode:   c.SafeMode,
	}
}

// SchemaConfig expresses the front-matter field policy as plain data so
// alternate schemas ship per content type without recompilation.
type SchemaConfig struct {
	Required  []string `yaml:"required"`
	Booleans  []string `yaml:"booleans"`
	Sequences []string `yaml:"sequences"`
	Scalars   []string `yaml:"scalars"`
}

// Schema materialises the config into a schema.Schema.
func (c SchemaConfig) Schema() schema.Schema {
	types := map[string]schema.FieldType{}
	for _, field := range c.Booleans {
		types[field] = schema.TypeBoolean
	}
	for _, field := range c.Sequences {
		types[field] = schema.TypeSequence
	}
	for _, field := range c.Scalars {
		types[field] = schema.TypeScalar
	}
	return schema.Schema{
		Required: append([]string(nil), c.Required...),
		Types:    types,
	}
}

// LoggingConfig selects the go-logger provider options.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	AddSource bool   `yaml:"add_source"`
}

// DefaultConfig returns the stock configuration: markdown files under
// ./content, recursive discovery, rendering on, and the default blog-post
// field policy.
func DefaultConfig() Config {
	return Config{
		ContentDir:  "content",
		Pattern:     "*.md",
		Recursive:   true,
		Concurrency: 4,
		Render: RenderConfig{
			Enabled: true,
		},
		Schema: SchemaConfig{
			Required:  []string{"layout", "title"},
			Booleans:  []string{"comments"},
			Sequences: []string{"tags", "categories"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads a YAML config file over the defaults and validates the
// result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration is internally consistent.
func (c Config) Validate() error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.Concurrency, validation.Min(0)),
	)
	if err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Validate checks the logging block against the formats and levels the
// go-logger provider understands.
func (c LoggingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&c.Format, validation.In("json", "console", "pretty")),
	)
}
