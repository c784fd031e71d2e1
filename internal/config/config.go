/*
File    : prose/internal/config/config.go
Package : config
*/

// Package config loads the optional `.prose.yaml` file consulted by the
// CLI and REPL for ambient, non-semantic settings — nothing here affects
// language behavior, only how the tool presents itself.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full set of ambient settings. The zero value has color on
// but an empty prompt and banner; Default supplies the standard ones.
type Config struct {
	Prompt  string `yaml:"prompt"`
	Banner  string `yaml:"banner"`
	NoColor bool   `yaml:"no_color"`
}

// Default returns the settings used when no `.prose.yaml` is found.
func Default() Config {
	return Config{
		Prompt: "prose> ",
		Banner: "prose — a small interpreted language",
	}
}

// Load reads path and merges it over Default(). A missing file is not an
// error — it simply yields the defaults, since the file is entirely
// optional.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
