// Package config handles mdxtool configuration loading and management.
package config

import "fmt"

// Config holds all tool settings.
type Config struct {
	Playback PlaybackConfig `yaml:"playback"`
	Sampling SamplingConfig `yaml:"sampling"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PlaybackConfig controls how sequences are advanced.
type PlaybackConfig struct {
	TicksPerSecond int    `yaml:"ticks_per_second"` // Model time units per second
	Sequence       string `yaml:"sequence"`         // Sequence to play; empty picks the first
	FrameRate      int    `yaml:"frame_rate"`       // Simulated frames per second for play
	MaxFrames      int    `yaml:"max_frames"`       // Safety cap for play; 0 means one loop
}

// SamplingConfig controls track sampling output.
type SamplingConfig struct {
	Step      int `yaml:"step"`      // Ticks between samples
	Precision int `yaml:"precision"` // Decimal places printed
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Playback: PlaybackConfig{
			TicksPerSecond: 960,
			Sequence:       "",
			FrameRate:      30,
			MaxFrames:      0,
		},
		Sampling: SamplingConfig{
			Step:      100,
			Precision: 4,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate rejects settings the tool cannot run with.
func (c *Config) Validate() error {
	if c.Playback.TicksPerSecond <= 0 {
		return fmt.Errorf("playback.ticks_per_second must be positive, got %d", c.Playback.TicksPerSecond)
	}
	if c.Playback.FrameRate <= 0 {
		return fmt.Errorf("playback.frame_rate must be positive, got %d", c.Playback.FrameRate)
	}
	if c.Sampling.Step <= 0 {
		return fmt.Errorf("sampling.step must be positive, got %d", c.Sampling.Step)
	}
	if c.Sampling.Precision < 0 {
		return fmt.Errorf("sampling.precision must not be negative, got %d", c.Sampling.Precision)
	}
	return nil
}

// TicksPerFrame returns how many ticks one simulated frame advances.
func (c *Config) TicksPerFrame() int {
	n := c.Playback.TicksPerSecond / c.Playback.FrameRate
	if n < 1 {
		return 1
	}
	return n
}
