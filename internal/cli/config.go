package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	semver "github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/orizon-lang/astkit/internal/printer"
)

// Configuration keys. Each can be set in astgen.yaml, through an ASTGEN_
// environment variable (dashes become underscores) or by the flag of the
// same name.
const (
	KeyLogLevel    = "log-level"
	KeyColor       = "color"
	KeyLangVersion = "lang-version"
	KeyWorkers     = "workers"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the resolved astgen configuration.
type Config struct {
	LogLevel    logrus.Level
	Color       string
	LangVersion *semver.Version
	Workers     int
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyColor, ColorAuto)
	v.SetDefault(KeyLangVersion, "2.0.0")
	v.SetDefault(KeyWorkers, runtime.NumCPU())
}

// NewViper creates a viper instance with defaults, environment binding and,
// when one exists, the config file. An empty cfgFile searches for
// astgen.yaml in the working directory and in $HOME/.config/astgen.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("astgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "astgen"))
		}
	}

	v.SetEnvPrefix("ASTGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// LoadConfig validates the values held by v.
func LoadConfig(v *viper.Viper) (*Config, error) {
	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLogLevel, err)
	}

	color := strings.ToLower(v.GetString(KeyColor))
	switch color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("%s: want auto, always or never, got %q", KeyColor, color)
	}

	version, err := semver.NewVersion(v.GetString(KeyLangVersion))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyLangVersion, err)
	}

	workers := v.GetInt(KeyWorkers)
	if workers < 1 {
		return nil, fmt.Errorf("%s: must be at least 1, got %d", KeyWorkers, workers)
	}

	return &Config{LogLevel: level, Color: color, LangVersion: version, Workers: workers}, nil
}

// UseColor reports whether output written to f should be coloured.
func (c *Config) UseColor(f *os.File) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return printer.ColorEnabled(f)
}

// NewLogger creates the command logger. Library packages never log; the
// logger is handed to the operations of this package as a FieldLogger.
func NewLogger(cfg *Config, out io.Writer, colored bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(cfg.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      colored,
		DisableColors:    !colored,
		DisableTimestamp: true,
	})
	return logger
}
