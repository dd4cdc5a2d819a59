package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the lockify CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the identity server.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerEndpointAddr  string
	OnlineCheckInterval time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:3000"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig applies defaults, then JSON, then flags from os.Args.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
