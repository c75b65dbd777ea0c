// Package config loads the service configuration from defaults, an
// optional YAML file, and DIAGRAPH_* environment variables, in that
// order of precedence. The merged result is validated before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/diagraph/dataset"
)

// EnvConfigPath names the environment variable that points at the YAML
// configuration file when no path is given explicitly.
const EnvConfigPath = "DIAGRAPH_CONFIG"

// ErrBadConfig wraps every validation failure of the merged configuration.
var ErrBadConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the root configuration of the diagraph service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Data     DataConfig     `yaml:"data"`
	Log      LogConfig      `yaml:"log"`
	Diagnose DiagnoseConfig `yaml:"diagnose"`
}

// HTTPConfig controls the REST listener.
type HTTPConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	AllowedOrigins  []string      `yaml:"allowed_origins" validate:"min=1"`
}

// DataConfig locates the four CSV files of the diagnosis corpus.
// The file names default to the conventional corpus layout and are
// resolved relative to Dir.
type DataConfig struct {
	Dir             string `yaml:"dir" validate:"required"`
	SeverityFile    string `yaml:"severity_file" validate:"required"`
	DatasetFile     string `yaml:"dataset_file" validate:"required"`
	DescriptionFile string `yaml:"description_file" validate:"required"`
	PrecautionFile  string `yaml:"precaution_file" validate:"required"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// DiagnoseConfig tunes the scoring surface.
type DiagnoseConfig struct {
	// TopN caps how many ranked diseases a response carries. 0 means all.
	TopN int `yaml:"top_n" validate:"gte=0"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Data: DataConfig{
			Dir:             "data",
			SeverityFile:    dataset.DefaultSeverityFile,
			DatasetFile:     dataset.DefaultDatasetFile,
			DescriptionFile: dataset.DefaultDescriptionFile,
			PrecautionFile:  dataset.DefaultPrecautionFile,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Diagnose: DiagnoseConfig{
			TopN: 0,
		},
	}
}

// Load merges defaults, the YAML file at path (or $DIAGRAPH_CONFIG when
// path is empty), and DIAGRAPH_* environment variables. A missing file
// is an error only when its path was given explicitly; the environment
// fallback is allowed to point nowhere.
func Load(path string) (Config, error) {
	cfg := Default()

	// 1) Overlay the YAML file, if any.
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// fall through to env overlay
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	// 2) Overlay environment variables.
	cfg.applyEnv()

	// 3) Validate the merged result.
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	return cfg, nil
}

// applyEnv overlays DIAGRAPH_* environment variables on the configuration.
func (c *Config) applyEnv() {
	c.HTTP.Addr = getEnv("DIAGRAPH_HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.ShutdownTimeout = getEnvDuration("DIAGRAPH_HTTP_SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)
	if origins := os.Getenv("DIAGRAPH_HTTP_ORIGINS"); origins != "" {
		c.HTTP.AllowedOrigins = splitAndTrim(origins)
	}
	c.Data.Dir = getEnv("DIAGRAPH_DATA_DIR", c.Data.Dir)
	c.Log.Level = getEnv("DIAGRAPH_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("DIAGRAPH_LOG_FORMAT", c.Log.Format)
	c.Diagnose.TopN = getEnvInt("DIAGRAPH_DIAGNOSE_TOP_N", c.Diagnose.TopN)
}

// DatasetConfig maps the data section onto the loader's file set.
func (d DataConfig) DatasetConfig() dataset.Config {
	cfg := dataset.ConfigForDir(d.Dir)
	if d.SeverityFile != "" {
		cfg.SeverityPath = filepath.Join(d.Dir, d.SeverityFile)
	}
	if d.DatasetFile != "" {
		cfg.DatasetPath = filepath.Join(d.Dir, d.DatasetFile)
	}
	if d.DescriptionFile != "" {
		cfg.DescriptionPath = filepath.Join(d.Dir, d.DescriptionFile)
	}
	if d.PrecautionFile != "" {
		cfg.PrecautionPath = filepath.Join(d.Dir, d.PrecautionFile)
	}
	return cfg
}

// NewLogger builds a zap logger honoring the configured level and format.
func (l LogConfig) NewLogger() (*zap.Logger, error) {
	var zapConfig zap.Config
	if l.Format == "console" {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	switch l.Level {
	case "debug":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapConfig.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}
	return logger, nil
}

// getEnv reads an environment variable, falling back to the current value.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvDuration reads a duration-valued environment variable, keeping
// the fallback on parse failure.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvInt reads an integer-valued environment variable, keeping the
// fallback on parse failure.
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// splitAndTrim splits a comma-separated list and drops empty entries.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
