package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pelletier/go-toml/v2"
)

// FileNames are the config files Find looks for, in order.
var FileNames = []string{"gitcommits.yaml", "gitcommits.yml", "gitcommits.toml"}

// Load reads a config file. Files ending in .toml are decoded as TOML;
// anything else as YAML (which includes JSON).
func Load(p string) (*Config, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	return decode(p, b)
}

func decode(p string, b []byte) (*Config, error) {
	cfg := &Config{}
	if strings.EqualFold(filepath.Ext(p), ".toml") {
		if err := toml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("config: invalid toml in %s: %w", p, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: invalid yaml in %s: %w", p, err)
	}
	return cfg, nil
}

// Find walks up from dir looking for one of FileNames. It returns a nil
// config and empty path if none exist.
func Find(dir string) (*Config, string, error) {
	wd, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}

	for {
		for _, name := range FileNames {
			candPath := filepath.Join(wd, name)
			b, err := os.ReadFile(candPath)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				return nil, "", err
			}
			cfg, err := decode(candPath, b)
			if err != nil {
				return nil, "", err
			}
			return cfg, candPath, nil
		}

		parent := filepath.Dir(wd)
		if parent == wd {
			break
		}
		wd = parent
	}
	return nil, "", nil
}
