package config

import "time"

// Config holds runtime settings for the fitkeeper CLI.
type Config struct {
	ServerEndpointAddr string
	DataDir            string
	RequestTimeout     time.Duration
	LogLevel           string
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DataDir = ".fitkeeper"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig applies defaults, then the JSON file, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
