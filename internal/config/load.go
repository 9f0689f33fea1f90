package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const appName = "mdxtool"

// EnvConfig names a config file when -config is not given.
const EnvConfig = "MDXTOOL_CONFIG"

// Load builds the configuration from defaults, then the first config file
// found, then flags. The result is validated.
func Load() (*Config, error) {
	cfg := Default()

	if path := resolveConfigPath(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, errors.Wrapf(err, "config %s", path)
		}
	}
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// resolveConfigPath prefers -config, then $MDXTOOL_CONFIG. Both are returned
// even if the file is missing so the caller reports it. Otherwise the first
// existing candidate wins.
func resolveConfigPath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return findConfigFile()
}

func findConfigFile() string {
	for _, path := range configCandidates() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func configCandidates() []string {
	return []string{
		appName + ".yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}
}

// ConfigDir returns the per-user config directory for mdxtool, falling back
// to the temp dir when the user has none.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, appName)
}

// loadFromFile overlays the YAML file on cfg. Unknown keys are rejected and
// an empty file changes nothing.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "decode")
	}
	return nil
}
