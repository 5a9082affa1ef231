package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gorollreg/regression"
	"github.com/sartorproj/gorollreg/rolling"
	"github.com/sartorproj/gorollreg/timeseries"
)

// ErrInvalidConfig is returned for configuration files that cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the file form of a run configuration.
type Config struct {
	WindowSize      int              `yaml:"window_size"`
	OnStepError     string           `yaml:"on_step_error"`
	RequireAdequate bool             `yaml:"require_adequate"`
	Regression      RegressionConfig `yaml:"regression"`
	Data            DataConfig       `yaml:"data"`
	Report          ReportConfig     `yaml:"report"`
	Log             LogConfig        `yaml:"log"`
}

// RegressionConfig holds the model settings.
type RegressionConfig struct {
	Alpha      float64 `yaml:"alpha"`
	Confidence float64 `yaml:"confidence"`
	Solver     string  `yaml:"solver"`
}

// DataConfig locates the observations CSV.
type DataConfig struct {
	Path            string `yaml:"path"`
	DayColumn       string `yaml:"day_column"`
	CovariateColumn string `yaml:"covariate_column"`
	ResponseColumn  string `yaml:"response_column"`
	Delimiter       string `yaml:"delimiter"`
	SkipRows        int    `yaml:"skip_rows"`
}

// ReportConfig controls the run export.
type ReportConfig struct {
	Path     string `yaml:"path"`
	Compress bool   `yaml:"compress"`
}

// LogConfig controls the logger built by Logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	reg := regression.DefaultConfig()
	roll := rolling.DefaultConfig()
	csv := timeseries.DefaultCSVOptions()

	return &Config{
		WindowSize:  roll.WindowSize,
		OnStepError: string(roll.OnStepError),
		Regression: RegressionConfig{
			Alpha:      reg.Alpha,
			Confidence: reg.Confidence,
			Solver:     string(reg.Solver),
		},
		Data: DataConfig{
			DayColumn:       csv.DayColumn,
			CovariateColumn: csv.CovariateColumn,
			ResponseColumn:  csv.ResponseColumn,
			Delimiter:       string(csv.Delimiter),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
// Empty input yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against the forecaster and engine rules.
func (c *Config) Validate() error {
	if err := c.RollingConfig(nil).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if len([]rune(c.Data.Delimiter)) > 1 {
		return fmt.Errorf("%w: delimiter %q must be a single character", ErrInvalidConfig, c.Data.Delimiter)
	}
	if c.Data.SkipRows < 0 {
		return fmt.Errorf("%w: skip_rows must not be negative, got %d", ErrInvalidConfig, c.Data.SkipRows)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// RegressionConfig converts the regression section to an engine configuration.
func (c *Config) RegressionConfig() *regression.Config {
	return &regression.Config{
		Alpha:      c.Regression.Alpha,
		Confidence: c.Regression.Confidence,
		Solver:     regression.Solver(c.Regression.Solver),
	}
}

// RollingConfig converts the configuration to a forecaster configuration
// logging to logger. A nil logger disables logging.
func (c *Config) RollingConfig(logger *zap.Logger) *rolling.Config {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &rolling.Config{
		WindowSize:      c.WindowSize,
		OnStepError:     rolling.Policy(c.OnStepError),
		RequireAdequate: c.RequireAdequate,
		Regression:      c.RegressionConfig(),
		Logger:          logger,
	}
}

// CSVOptions converts the data section to CSV loading options.
func (c *Config) CSVOptions() *timeseries.CSVOptions {
	opts := timeseries.DefaultCSVOptions()
	if c.Data.DayColumn != "" {
		opts.DayColumn = c.Data.DayColumn
	}
	if c.Data.CovariateColumn != "" {
		opts.CovariateColumn = c.Data.CovariateColumn
	}
	if c.Data.ResponseColumn != "" {
		opts.ResponseColumn = c.Data.ResponseColumn
	}
	if d := []rune(c.Data.Delimiter); len(d) == 1 {
		opts.Delimiter = d[0]
	}
	opts.SkipRows = c.Data.SkipRows
	return opts
}

// Logger builds a zap logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
