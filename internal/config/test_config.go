package config

// TestConfig returns a config suitable for testing: built-in site, no
// watcher, logging off.
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.Site = SiteConfig{}
	cfg.Log = LogConfig{Level: "off"}
	return cfg
}
