package internal

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
)

// ConfigFileName is looked up in the working directory when no path is given
const ConfigFileName = "setlang.toml"

// Config holds the settings read from setlang.toml
type Config struct {
	LogLevel     string `toml:"log_level"`
	Color        bool   `toml:"color"`
	PrintResults bool   `toml:"print_results"`
	DumpTokens   bool   `toml:"dump_tokens"`
	DumpEnv      bool   `toml:"dump_env"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "warning",
		Color:        true,
		PrintResults: true,
	}
}

// LoadConfig reads path on top of the defaults. A missing file is not an
// error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level parses LogLevel as a logrus level
func (c *Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Options translates the config into interpreter options
func (c *Config) Options() []Option {
	var opts []Option
	if !c.PrintResults {
		opts = append(opts, WithoutResults())
	}
	if c.DumpTokens {
		opts = append(opts, WithTokenDump())
	}
	return opts
}
