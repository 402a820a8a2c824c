// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/internal/grid"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys, shared by flags, env vars and the config file.
const (
	keyConfig    = "config"
	keyPrecision = "precision"
	keyPretty    = "pretty"
	keyLogLevel  = "log-level"
	keyFile      = "file"
	keyA         = "a"
	keyB         = "b"

	envPrefix = "LINALG"
)

// Config is the resolved command configuration.
type Config struct {
	Precision int
	Pretty    bool
	LogLevel  string
	File      string
	A, B      string
}

// addGlobalFlags registers the persistent flags on fs.
func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "config file (yaml, json or toml)")
	fs.Int(keyPrecision, grid.DefaultPrecision, "digits after the decimal point; -1 keeps the shortest form")
	fs.Bool(keyPretty, false, "render matrices with gonum's bracketed formatter")
	fs.String(keyLogLevel, "info", "log level: debug, info, warn, error")
	fs.StringP(keyFile, "f", "", "YAML file holding operands a and b")
	fs.String(keyA, "", `first operand, e.g. "1,2,3" or "1,2;3,4"`)
	fs.String(keyB, "", "second operand")
}

// newViper returns a viper instance bound to fs and LINALG_* env vars.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	return v, nil
}

// loadConfig reads the optional config file and resolves every key.
func loadConfig(v *viper.Viper) (Config, error) {
	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	cfg := Config{
		Precision: v.GetInt(keyPrecision),
		Pretty:    v.GetBool(keyPretty),
		LogLevel:  v.GetString(keyLogLevel),
		File:      v.GetString(keyFile),
		A:         v.GetString(keyA),
		B:         v.GetString(keyB),
	}
	if cfg.Precision < grid.DefaultPrecision {
		return Config{}, fmt.Errorf("%s must be >= %d, got %d", keyPrecision, grid.DefaultPrecision, cfg.Precision)
	}

	return cfg, nil
}
