package config

import "flag"

// Flags are registered on a caller-supplied FlagSet so every meshtool
// subcommand shares them.
type Flags struct {
	config          *string
	debug           *bool
	noGreedy        *bool
	ignoreBlockType *bool
	registry        *string
	workers         *int
}

// RegisterFlags adds the shared configuration flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		config:          fs.String("config", "", "Path to config file"),
		debug:           fs.Bool("debug", false, "Enable debug logging"),
		noGreedy:        fs.Bool("no-greedy", false, "Emit one quad per visible face"),
		ignoreBlockType: fs.Bool("ignore-block-type", false, "Merge faces of different blocks"),
		registry:        fs.String("registry", "", "Path to block registry YAML"),
		workers:         fs.Int("workers", 0, "Concurrent meshing workers"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if *f.noGreedy {
		cfg.Mesher.Greedy = false
	}
	if *f.ignoreBlockType {
		cfg.Mesher.IgnoreBlockType = true
	}
	if *f.registry != "" {
		cfg.Registry.Path = *f.registry
	}
	if *f.workers > 0 {
		cfg.Batch.Workers = *f.workers
	}
}
