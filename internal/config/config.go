package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Environment variables for S3 credentials.
const (
	EnvS3AccessKey = "STEPFORM_S3_ACCESS_KEY"
	EnvS3SecretKey = "STEPFORM_S3_SECRET_KEY"
)

// Config is the stepform configuration.
type Config struct {
	Log           LogConfig     `yaml:"log"`
	Sinks         SinksConfig   `yaml:"sinks"`
	SubmitTimeout Duration      `yaml:"submit_timeout"`
	Metrics       MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the log level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SinksConfig enables the submission sinks.
type SinksConfig struct {
	Log  LogSinkConfig  `yaml:"log"`
	File FileSinkConfig `yaml:"file"`
	S3   S3SinkConfig   `yaml:"s3"`
}

// LogSinkConfig configures the log sink.
type LogSinkConfig struct {
	Enabled bool `yaml:"enabled"`
}

// FileSinkConfig configures the file sink.
type FileSinkConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// S3SinkConfig configures the S3 sink.
type S3SinkConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Endpoint     string `yaml:"endpoint"`
	Region       string `yaml:"region"`
	Bucket       string `yaml:"bucket"`
	Prefix       string `yaml:"prefix"`
	PathStyle    bool   `yaml:"path_style"`
	CreateBucket bool   `yaml:"create_bucket"`

	// Populated from the environment, never from the file.
	AccessKey string `yaml:"-"`
	SecretKey string `yaml:"-"`
}

// MetricsConfig configures metrics output.
type MetricsConfig struct {
	// Textfile is written on exit in the node_exporter textfile format.
	Textfile string `yaml:"textfile"`
}

// Log levels and formats.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  LevelInfo,
			Format: FormatConsole,
		},
		Sinks: SinksConfig{
			Log:  LogSinkConfig{Enabled: true},
			File: FileSinkConfig{Dir: "submissions"},
			S3:   S3SinkConfig{Prefix: "submissions/"},
		},
		SubmitTimeout: Duration(30 * time.Second),
	}
}

// ApplyEnv copies credentials from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvS3AccessKey); v != "" {
		c.Sinks.S3.AccessKey = v
	}
	if v := os.Getenv(EnvS3SecretKey); v != "" {
		c.Sinks.S3.SecretKey = v
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []error

	switch c.Log.Level {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", []string{LevelDebug, LevelInfo, LevelWarn, LevelError}))
	}

	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: %v", []string{FormatConsole, FormatJSON}))
	}

	if c.SubmitTimeout.Duration() <= 0 {
		errs = append(errs, errors.New("submit_timeout must be positive"))
	}

	if c.Sinks.File.Enabled && c.Sinks.File.Dir == "" {
		errs = append(errs, errors.New("sinks.file.dir is required when the file sink is enabled"))
	}

	if s3 := c.Sinks.S3; s3.Enabled {
		if s3.Endpoint == "" {
			errs = append(errs, errors.New("sinks.s3.endpoint is required when the s3 sink is enabled"))
		}
		if s3.Region == "" {
			errs = append(errs, errors.New("sinks.s3.region is required when the s3 sink is enabled"))
		}
		if s3.Bucket == "" {
			errs = append(errs, errors.New("sinks.s3.bucket is required when the s3 sink is enabled"))
		}
		if s3.AccessKey == "" {
			errs = append(errs, fmt.Errorf("%s environment variable required when the s3 sink is enabled", EnvS3AccessKey))
		}
		if s3.SecretKey == "" {
			errs = append(errs, fmt.Errorf("%s environment variable required when the s3 sink is enabled", EnvS3SecretKey))
		}
	}

	return errors.Join(errs...)
}

// EnabledSinks lists the names of the enabled sinks in delivery order.
func (c *Config) EnabledSinks() []string {
	var out []string
	if c.Sinks.Log.Enabled {
		out = append(out, "log")
	}
	if c.Sinks.File.Enabled {
		out = append(out, "file")
	}
	if c.Sinks.S3.Enabled {
		out = append(out, "s3")
	}
	return out
}
