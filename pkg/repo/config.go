package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	defaultUserName  = "Hugo"
	defaultUserEmail = "test@example.com"
)

// Config stores repository-local settings in .git/config.toml.
type Config struct {
	User UserConfig `toml:"user"`
}

// UserConfig is the identity used for commits.
type UserConfig struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

func (r *Repo) configPath() string {
	return filepath.Join(r.GitDir, "config.toml")
}

// ReadConfig reads .git/config.toml. A missing file yields the default
// identity; empty fields are filled from the defaults too.
func (r *Repo) ReadConfig() (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(r.configPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("read config: unmarshal: %w", err)
	}

	if cfg.User.Name == "" {
		cfg.User.Name = defaultUserName
	}
	if cfg.User.Email == "" {
		cfg.User.Email = defaultUserEmail
	}
	return cfg, nil
}

// WriteConfig atomically writes .git/config.toml.
func (r *Repo) WriteConfig(cfg *Config) error {
	tmp, err := os.CreateTemp(r.GitDir, ".config-tmp-*")
	if err != nil {
		return fmt.Errorf("write config: tmpfile: %w", err)
	}
	tmpName := tmp.Name()

	if err := toml.NewEncoder(tmp).Encode(cfg); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write config: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write config: close: %w", err)
	}
	if err := os.Rename(tmpName, r.configPath()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write config: rename: %w", err)
	}
	return nil
}
