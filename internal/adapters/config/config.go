// Package config loads the steamctl configuration file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file steamctl looks for in the
// working directory.
const DefaultFilename = "steamctl.yaml"

// SpacewarAppID is the Steamworks test app every Steam account owns. It is
// the default when no app id is configured.
const SpacewarAppID = 480

// Config controls how steamctl talks to the Steam client.
type Config struct {
	// AppID of the game whose stats and achievements are addressed.
	AppID uint32
	// Timeout bounds every wait on the Steam servers.
	Timeout time.Duration
	// Avatar is the avatar size listings fetch: small, medium or large.
	Avatar string
}

// steamctlFile is the on-disk shape of steamctl.yaml.
type steamctlFile struct {
	AppID   uint32 `yaml:"appId"`
	Timeout string `yaml:"timeout"`
	Avatar  string `yaml:"avatar"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		AppID:   SpacewarAppID,
		Timeout: 10 * time.Second,
		Avatar:  "medium",
	}
}

// Loader reads the configuration from a working directory.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for the default filename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load reads the configuration from the given working directory. A missing
// file is not an error; defaults apply.
func (l *Loader) Load(cwd string) (*Config, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a configuration file from the given path.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file steamctlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if file.AppID != 0 {
		cfg.AppID = file.AppID
	}
	if file.Timeout != "" {
		d, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to parse timeout")
		}
		if d <= 0 {
			return nil, zerr.With(zerr.New("timeout must be positive"), "timeout", file.Timeout)
		}
		cfg.Timeout = d
	}
	if file.Avatar != "" {
		switch file.Avatar {
		case "small", "medium", "large":
			cfg.Avatar = file.Avatar
		default:
			return nil, zerr.With(zerr.New("unknown avatar size"), "avatar", file.Avatar)
		}
	}

	return cfg, nil
}
