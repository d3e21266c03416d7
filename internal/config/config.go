// Package config loads layout-inspector settings from defaults, an optional
// YAML file, LAYOUT_* environment variables and command-line flags.
package config

import (
	"fmt"
	"go/types"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"layout-inspector/internal/render"
	"layout-inspector/primitive"
)

const (
	// DefaultFile is looked up in the working directory when no --config is given.
	DefaultFile = "layout-inspector.yaml"
	// EnvPrefix prefixes environment overrides: LAYOUT_MODEL, LAYOUT_LOG_LEVEL, ...
	EnvPrefix = "LAYOUT_"

	DefaultArch     = "amd64"
	DefaultLogLevel = "warn"
)

// Config holds the resolved settings.
type Config struct {
	// Model is the C data model for primitive sizes (lp64, ilp32, llp64).
	Model string `koanf:"model"`
	// Arch is the GOARCH whose sizes are used when analyzing Go packages.
	Arch string `koanf:"arch"`
	// Output selects the renderer: text, table, json or yaml.
	Output string `koanf:"output"`
	// Verbose also prints padding summaries and diagnostics notes.
	Verbose bool `koanf:"verbose"`
	// LogLevel is the zap level for stderr logging.
	LogLevel string `koanf:"log_level"`
	// ExportedOnly restricts Go analysis to exported struct types.
	ExportedOnly bool `koanf:"exported_only"`

	// FileUsed is the config file that was loaded, if any.
	FileUsed string `koanf:"-"`
}

// DataModel returns the parsed Model.
func (c *Config) DataModel() primitive.DataModel {
	m, err := primitive.ParseDataModel(c.Model)
	if err != nil {
		return primitive.DefaultDataModel
	}

	return m
}

// Mode returns the parsed Output.
func (c *Config) Mode() render.Mode {
	m, err := render.ParseMode(c.Output)
	if err != nil {
		return render.ModeText
	}

	return m
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Model:    primitive.DefaultDataModel.String(),
		Arch:     DefaultArch,
		Output:   render.ModeText.String(),
		LogLevel: DefaultLogLevel,
	}
}

// Load loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags that were explicitly set override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	def := Default()
	if err := k.Load(confmap.Provider(map[string]any{
		"model":         def.Model,
		"arch":          def.Arch,
		"output":        def.Output,
		"verbose":       false,
		"log_level":     def.LogLevel,
		"exported_only": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	fileUsed := findConfigFile(cfgFile)
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", fileUsed, err)
		}
	}

	// LAYOUT_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}

			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.FileUsed = fileUsed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// findConfigFile returns the explicit path, or DefaultFile when it exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}

	return ""
}

// Validate checks that every setting has a known value.
func (c *Config) Validate() error {
	if _, err := primitive.ParseDataModel(c.Model); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if _, err := render.ParseMode(c.Output); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if types.SizesFor("gc", c.Arch) == nil {
		return fmt.Errorf("config: unsupported arch %q", c.Arch)
	}

	return nil
}
