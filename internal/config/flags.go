package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagSequence = flag.String("sequence", "", "Sequence to play or sample")
	flagTPS      = flag.Int("tps", 0, "Ticks per second")
	flagStep     = flag.Int("step", 0, "Ticks between samples")
	flagLogFile  = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSequence != "" {
		cfg.Playback.Sequence = *flagSequence
	}
	if *flagTPS > 0 {
		cfg.Playback.TicksPerSecond = *flagTPS
	}
	if *flagStep > 0 {
		cfg.Sampling.Step = *flagStep
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
