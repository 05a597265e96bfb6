package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// BaseURLEnv overrides api.base_url when set. An empty base URL means
// requests are issued with server-relative paths (same-origin proxying).
const BaseURLEnv = "LIFEFORGE_API_URL"

type Config struct {
	API     API     `yaml:"api"`
	Proxy   Proxy   `yaml:"proxy"`
	Session Session `yaml:"session"`
	Log     Log     `yaml:"log"`
}

type API struct {
	BaseURL     string        `yaml:"base_url"`
	ChatTimeout time.Duration `yaml:"chat_timeout"`
}

type Proxy struct {
	Port           string        `yaml:"port"`
	BackendURL     string        `yaml:"backend_url"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
}

type Session struct {
	File string `yaml:"file"` // persisted session state; empty keeps it in memory
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// MustLoad reads the config file and panics on any problem.
// Missing optional fields are filled with defaults.
func MustLoad(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	raw, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		panic("can't unmarshal config file")
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg
}

// Default returns a config usable without a file, for embedding the client
// in other programs.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.API.ChatTimeout == 0 {
		c.API.ChatTimeout = 30 * time.Second
	}
	if c.Proxy.Port == "" {
		c.Proxy.Port = "8080"
	}
	if c.Proxy.BackendURL == "" {
		c.Proxy.BackendURL = "http://localhost:8000"
	}
	if len(c.Proxy.AllowedOrigins) == 0 {
		c.Proxy.AllowedOrigins = []string{
			"http://localhost:8080",
			"http://127.0.0.1:8080",
			"http://localhost:5173",
			"http://localhost:3000",
		}
	}
	if c.Proxy.ReadTimeout == 0 {
		c.Proxy.ReadTimeout = 5 * time.Second
	}
	if c.Proxy.WriteTimeout == 0 {
		// Streamed chat responses pass through the proxy, so the write
		// timeout has to outlive the chat timeout.
		c.Proxy.WriteTimeout = 60 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(BaseURLEnv); ok {
		c.API.BaseURL = v
	}
}
