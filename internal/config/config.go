package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Cache drivers.
const (
	CacheDriverNone   = "none"
	CacheDriverRedis  = "redis"
	CacheDriverValkey = "valkey"
)

// DefaultModels are the local language models preferred, in order.
var DefaultModels = []string{
	"llama3.2:3b", // small and fast
	"llama3.2:1b",
	"mistral:7b",
	"qwen2.5:3b", // multilingual
	"phi3:mini",
}

// Config holds the filacolia service configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Cache   CacheConfig   `yaml:"cache"`
	LLM     LLMConfig     `yaml:"llm"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
// RateLimitRPS limits POST /api/chat per client IP; 0 disables it.
type HTTPConfig struct {
	Port            int     `yaml:"port"`
	ReadTimeoutSec  int     `yaml:"read_timeout_sec"`
	WriteTimeoutSec int     `yaml:"write_timeout_sec"`
	ShutdownSec     int     `yaml:"shutdown_timeout_sec"`
	MaxBodyBytes    int     `yaml:"max_body_bytes"`
	RateLimitRPS    float64 `yaml:"rate_limit_rps"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// CacheConfig holds answer cache settings.
type CacheConfig struct {
	Driver           string   `yaml:"driver"` // none, redis, valkey (default: none)
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	TTLSec           int      `yaml:"ttl_sec"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// LLMConfig holds the local language-model runtime settings.
// The runtime is only probed by the health check when Enabled is set.
type LLMConfig struct {
	Enabled bool     `yaml:"enabled"`
	BaseURL string   `yaml:"base_url"`
	APIKey  string   `yaml:"api_key"`
	Models  []string `yaml:"models"`
}

// Enabled reports whether answers go through the external cache.
func (c CacheConfig) Enabled() bool { return c.Driver != CacheDriverNone }

// TTL returns the cache entry lifetime.
func (c CacheConfig) TTL() time.Duration { return time.Duration(c.TTLSec) * time.Second }

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from the YAML file at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, substituting ${VAR} references, then
// applies defaults and validates the result.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		c.HTTP.MaxBodyBytes = 1 << 20
	}
	if c.HTTP.RateLimitRPS > 0 && c.HTTP.RateLimitBurst <= 0 {
		c.HTTP.RateLimitBurst = max(1, int(c.HTTP.RateLimitRPS))
	}
	if c.Cache.Driver == "" {
		c.Cache.Driver = CacheDriverNone
	}
	if c.Cache.TTLSec == 0 {
		c.Cache.TTLSec = 3600
	}
	if c.Cache.ReadinessTimeout <= 0 {
		c.Cache.ReadinessTimeout = 10
	}
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = "http://localhost:11434/v1"
	}
	if len(c.LLM.Models) == 0 {
		c.LLM.Models = append([]string(nil), DefaultModels...)
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.HTTP.RateLimitRPS < 0 {
		return fmt.Errorf("http.rate_limit_rps must not be negative, got %v", c.HTTP.RateLimitRPS)
	}
	switch c.Cache.Driver {
	case CacheDriverNone:
	case CacheDriverRedis, CacheDriverValkey:
		if len(c.Cache.Addrs) == 0 {
			return fmt.Errorf("cache.addrs is required for driver %q", c.Cache.Driver)
		}
		for i, a := range c.Cache.Addrs {
			if strings.TrimSpace(a) == "" {
				return fmt.Errorf("cache.addrs[%d] is empty", i)
			}
		}
	default:
		return fmt.Errorf("cache.driver must be \"none\", \"redis\" or \"valkey\", got %q", c.Cache.Driver)
	}
	if c.Cache.TTLSec < 0 {
		return fmt.Errorf("cache.ttl_sec must not be negative, got %d", c.Cache.TTLSec)
	}
	for i, m := range c.LLM.Models {
		if strings.TrimSpace(m) == "" {
			return fmt.Errorf("llm.models[%d] is empty", i)
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
