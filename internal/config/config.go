// Package config loads the optional .golisprc.yaml launch configuration:
// the bootstrap stdlib path, REPL prompt string, and REPL history file,
// exposed to the running program as *config*.
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/golisp/internal/runtime"
)

// Config is the resolved launch configuration, defaulted and then
// overridden by whatever .golisprc.yaml supplies.
type Config struct {
	StdlibPath  string `yaml:"stdlib_path"`
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
}

// Default returns the configuration used when no .golisprc.yaml is
// found.
func Default() *Config {
	return &Config{
		Prompt: "user> ",
	}
}

// Load resolves configuration starting from Default, then merging
// .golisprc.yaml found next to scriptDir, and failing that, in the
// user's home directory. A missing file is not an error; a malformed
// one is.
func Load(scriptDir string) (*Config, error) {
	cfg := Default()

	candidates := []string{filepath.Join(scriptDir, ".golisprc.yaml")}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".golisprc.yaml"))
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return cfg, nil
}

// ToValue renders cfg as the *config* Map exposed to the running
// program.
func (cfg *Config) ToValue() *runtime.Map {
	m := runtime.NewMap()
	m.Set(runtime.NewKw("stdlib-path"), runtime.NewStr(cfg.StdlibPath))
	m.Set(runtime.NewKw("prompt"), runtime.NewStr(cfg.Prompt))
	m.Set(runtime.NewKw("history-file"), runtime.NewStr(cfg.HistoryFile))
	return m
}
