package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	ArchivePath string `toml:"archive_path"`
	UsersPath   string `toml:"users_path"`
	OutputDir   string `toml:"output_dir"`
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ArchivePath: "conversations.json",
		OutputDir:   ".",
	}

	cfgPath := filepath.Join(home, ".config", "claude-filter", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.ArchivePath = expandHome(cfg.ArchivePath, home)
	cfg.UsersPath = expandHome(cfg.UsersPath, home)
	cfg.OutputDir = expandHome(cfg.OutputDir, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
