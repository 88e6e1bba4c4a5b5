package config

// Config represents the tocbump configuration.
type Config struct {
	// WhitelistedAddons lists the addon directory names tocbump manages.
	// Order is preserved and duplicates are kept as written.
	WhitelistedAddons []string `json:"whitelisted_addons"`
	// AddonsDirectory is the root directory containing addon subdirectories.
	AddonsDirectory string `json:"addons_directory"`
}

// IsWhitelisted reports whether name appears in the whitelist.
func (c *Config) IsWhitelisted(name string) bool {
	for _, w := range c.WhitelistedAddons {
		if w == name {
			return true
		}
	}
	return false
}
