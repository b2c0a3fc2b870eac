// Package config resolves todayiwill settings and the data directory.
//
// Settings are read from the first file found of:
//   - $TODAYIWILL_CONFIG
//   - <user config dir>/todayiwill/config.toml
//   - <user config dir>/todayiwill/config.ini
//
// falling back to built-in defaults. $TODAYIWILL_DATA_DIR overrides the
// data directory from any source.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
)

const (
	AppName    = "todayiwill"
	EnvConfig  = "TODAYIWILL_CONFIG"
	EnvDataDir = "TODAYIWILL_DATA_DIR"
)

type Config struct {
	// DataDir holds one appointments file per day
	DataDir string `toml:"data_dir" ini:"data_dir"`
	// StrikePast renders past appointments struck through
	StrikePast bool `toml:"strike_past" ini:"strike_past"`
	// Opener is the program used by the open command
	Opener string `toml:"opener" ini:"opener"`
	// ReleaseRepo is the "owner/name" GitHub repository checked by update
	ReleaseRepo string `toml:"release_repo" ini:"release_repo"`

	// path of the file the config was loaded from, empty for defaults
	source string `toml:"-" ini:"-"`
}

func Default() *Config {
	return &Config{
		DataDir:     defaultDataDir(),
		StrikePast:  true,
		Opener:      defaultOpener(),
		ReleaseRepo: "vncsmyrnk/todayiwill",
	}
}

// Load reads the first config file found, then applies environment
// overrides. No config file at all is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if cfg, err = LoadFromPath(path); err != nil {
			return nil, err
		}
	}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.DataDir = dir
	}

	return cfg, nil
}

// LoadFromPath reads a .toml or .ini file on top of the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed parsing %s: %w", path, err)
		}
	case ".ini":
		file, err := ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed parsing %s: %w", path, err)
		}
		if err := file.MapTo(cfg); err != nil {
			return nil, fmt.Errorf("failed mapping %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}

	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.source = path
	return cfg, nil
}

// Source is the file the config was read from, empty when only defaults
// are in use.
func (c *Config) Source() string {
	return c.source
}

func (c *Config) Days() DataDir {
	return DataDir(c.DataDir)
}

func findConfigFile() (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		// no home directory, defaults only
		return "", nil
	}

	for _, name := range []string{"config.toml", "config.ini"} {
		path := filepath.Join(base, AppName, name)
		_, err := os.Stat(path)
		switch {
		case err == nil:
			return path, nil
		case errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return "", err
		}
	}

	return "", nil
}

func defaultDataDir() string {
	base, err := dataHome()
	if err != nil {
		return AppName
	}
	return filepath.Join(base, AppName)
}

// dataHome follows the platform's per-user data location
func dataHome() (string, error) {
	switch runtime.GOOS {
	case "windows":
		return os.UserConfigDir()
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); filepath.IsAbs(dir) {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

func defaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
