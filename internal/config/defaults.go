package config

// DefaultConfigPath is the configuration file looked up when --config is
// not given.
const DefaultConfigPath = "tocbump.json"

// DefaultAddonsDirectory is used when the configuration file does not set
// an addons directory.
const DefaultAddonsDirectory = "./addons"

// DefaultConfig returns the default configuration: an empty whitelist and
// the default addons directory.
func DefaultConfig() *Config {
	return &Config{
		WhitelistedAddons: []string{},
		AddonsDirectory:   DefaultAddonsDirectory,
	}
}
