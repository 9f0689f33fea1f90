package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Playback.TicksPerSecond != 960 {
		t.Errorf("expected 960 ticks per second, got %d", cfg.Playback.TicksPerSecond)
	}
	if cfg.Playback.Sequence != "" {
		t.Errorf("expected empty sequence, got %s", cfg.Playback.Sequence)
	}
	if cfg.Playback.FrameRate != 30 {
		t.Errorf("expected frame rate 30, got %d", cfg.Playback.FrameRate)
	}

	if cfg.Sampling.Step != 100 {
		t.Errorf("expected step 100, got %d", cfg.Sampling.Step)
	}
	if cfg.Sampling.Precision != 4 {
		t.Errorf("expected precision 4, got %d", cfg.Sampling.Precision)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestTicksPerFrame(t *testing.T) {
	cfg := Default()
	if got := cfg.TicksPerFrame(); got != 32 {
		t.Errorf("expected 32 ticks per frame, got %d", got)
	}

	cfg.Playback.TicksPerSecond = 10
	cfg.Playback.FrameRate = 60
	if got := cfg.TicksPerFrame(); got != 1 {
		t.Errorf("expected at least 1 tick per frame, got %d", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tps", func(c *Config) { c.Playback.TicksPerSecond = 0 }},
		{"zero frame rate", func(c *Config) { c.Playback.FrameRate = 0 }},
		{"negative step", func(c *Config) { c.Sampling.Step = -5 }},
		{"negative precision", func(c *Config) { c.Sampling.Precision = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
playback:
  ticks_per_second: 1000
  sequence: "Walk"
  frame_rate: 60

sampling:
  step: 50
  precision: 2

logging:
  level: "debug"
  log_file: "mdxtool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Playback.TicksPerSecond != 1000 {
		t.Errorf("expected 1000 ticks per second, got %d", cfg.Playback.TicksPerSecond)
	}
	if cfg.Playback.Sequence != "Walk" {
		t.Errorf("expected sequence Walk, got %s", cfg.Playback.Sequence)
	}
	if cfg.Playback.FrameRate != 60 {
		t.Errorf("expected frame rate 60, got %d", cfg.Playback.FrameRate)
	}
	if cfg.Sampling.Step != 50 {
		t.Errorf("expected step 50, got %d", cfg.Sampling.Step)
	}
	if cfg.Sampling.Precision != 2 {
		t.Errorf("expected precision 2, got %d", cfg.Sampling.Precision)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "mdxtool.log" {
		t.Errorf("expected log file 'mdxtool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
playback:
  ticks_per_second: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("sampling:\n  stepp: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for misspelled key, got nil")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("expected empty file to load, got %v", err)
	}
	if cfg.Sampling.Step != 100 {
		t.Errorf("expected default step 100, got %d", cfg.Sampling.Step)
	}
}

func TestLoadFromEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "env.yaml")
	if err := os.WriteFile(configPath, []byte("playback:\n  sequence: Walk\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfig, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Playback.Sequence != "Walk" {
		t.Errorf("expected sequence Walk from %s, got %q", EnvConfig, cfg.Playback.Sequence)
	}

	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Error("expected error for missing file named by environment")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "mdxtool.yaml")
	if err := os.WriteFile(configPath, []byte("sampling:\n  step: 10\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find mdxtool.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "sequence flag",
			setup: func() { *flagSequence = "Attack - 1" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Playback.Sequence != "Attack - 1" {
					t.Errorf("expected sequence 'Attack - 1', got %s", cfg.Playback.Sequence)
				}
			},
			teardown: func() { *flagSequence = "" },
		},
		{
			name: "tps and step flags",
			setup: func() {
				*flagTPS = 1200
				*flagStep = 25
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Playback.TicksPerSecond != 1200 {
					t.Errorf("expected 1200 ticks per second, got %d", cfg.Playback.TicksPerSecond)
				}
				if cfg.Sampling.Step != 25 {
					t.Errorf("expected step 25, got %d", cfg.Sampling.Step)
				}
			},
			teardown: func() {
				*flagTPS = 0
				*flagStep = 0
			},
		},
		{
			name:  "log file flag",
			setup: func() { *flagLogFile = "out.log" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.LogFile != "out.log" {
					t.Errorf("expected log file out.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
sampling:
  step: 40
  precision: 6
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagStep = 10
	defer func() {
		*flagConfig = ""
		*flagStep = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Flag wins over file.
	if cfg.Sampling.Step != 10 {
		t.Errorf("expected step 10 from flag, got %d", cfg.Sampling.Step)
	}
	if cfg.Sampling.Precision != 6 {
		t.Errorf("expected precision 6 from file, got %d", cfg.Sampling.Precision)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("playback:\n  frame_rate: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error for zero frame rate")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Playback.Sequence = "Stand"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Playback.Sequence != "Stand" {
		t.Errorf("expected sequence Stand, got %s", loaded.Playback.Sequence)
	}
}
