package conf

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/oasisprotocol/oasis-core/go/common/logging"
)

// Config contains the CLI configuration.
type Config struct {
	// OutputDir is the directory the converted JSON (and any diagnostic
	// dump) is written to. Defaults to the working directory.
	OutputDir string `koanf:"output_dir"`

	Log       *LogConfig       `koanf:"log"`
	Telemetry *TelemetryConfig `koanf:"telemetry"`
}

// Validate performs config validation.
func (cfg *Config) Validate() error {
	if cfg.Log != nil {
		if err := cfg.Log.Validate(); err != nil {
			return err
		}
	}
	if cfg.Telemetry != nil {
		if err := cfg.Telemetry.Validate(); err != nil {
			return fmt.Errorf("telemetry: %w", err)
		}
	}
	return nil
}

// LogConfig contains the logging configuration.
type LogConfig struct {
	Format string `koanf:"format"`
	Level  string `koanf:"level"`
	File   string `koanf:"file"`
}

// Validate validates the logging configuration.
func (cfg *LogConfig) Validate() error {
	var format logging.Format
	if err := format.Set(cfg.Format); err != nil {
		return err
	}
	var level logging.Level
	return level.Set(cfg.Level)
}

// TelemetryConfig is the metrics push configuration.
type TelemetryConfig struct {
	// PushAddress is the address of the Prometheus push gateway. Telemetry
	// push is disabled if unset.
	PushAddress string `koanf:"push_address"`

	// JobName is the push gateway job name. Defaults to "txpool-parser".
	JobName string `koanf:"job_name"`
}

// Enabled returns true if telemetry push is configured.
func (cfg *TelemetryConfig) Enabled() bool {
	if cfg == nil {
		return false
	}
	return cfg.PushAddress != ""
}

// Validate validates the telemetry configuration.
func (cfg *TelemetryConfig) Validate() error {
	if cfg.PushAddress != "" && cfg.JobName == "" {
		return fmt.Errorf("malformed job name: ''")
	}
	return nil
}

// InitConfig initializes configuration from a yaml file and the environment.
//
// An empty file path skips the file and uses defaults plus environment
// overrides.
func InitConfig(f string) (*Config, error) {
	var config Config
	k := koanf.New(".")

	// Load configuration from the yaml config.
	if f != "" {
		if err := k.Load(file.Provider(f), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Load environment variables and merge into the loaded config.
	if err := k.Load(env.Provider("", ".", func(s string) string {
		// `__` is used as a hierarchy delimiter.
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	// Unmarshal into config.
	if err := k.Unmarshal("", &config); err != nil {
		return nil, err
	}

	// Apply defaults.
	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	if config.Telemetry != nil && config.Telemetry.JobName == "" {
		config.Telemetry.JobName = "txpool-parser"
	}

	// Validate config.
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
