package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=HTTP server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Themes   ThemesConfig   `yaml:"themes" json:"themes" jsonschema:"description=Theme specs location"`
	Metadata MetadataConfig `yaml:"metadata" json:"metadata" jsonschema:"description=Movie metadata service configuration"`
	Library  LibraryConfig  `yaml:"library" json:"library" jsonschema:"description=Media library server configuration"`
	LLM      LLMConfig      `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for movie suggestions"`
	Engine   EngineConfig   `yaml:"engine" json:"engine" jsonschema:"description=Curation engine budgets"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds SQLite settings for the cache store and run history
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:reelscope.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// ThemesConfig points at the directory of theme spec files
type ThemesConfig struct {
	Dir string `yaml:"dir" json:"dir" jsonschema:"default=themes,description=Directory with per-theme YAML files"`
}

// MetadataConfig holds movie metadata service settings
type MetadataConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=Metadata service base URL"`
	APIKey   string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per-request timeout"`
}

// LibraryConfig holds media library server settings
type LibraryConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=Library server base URL"`
	Token    string        `yaml:"token" json:"token" jsonschema:"description=Library server auth token (can use environment variable)"`
	Section  string        `yaml:"section" json:"section" jsonschema:"default=Movies,description=Library section with movies"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Per-request timeout"`
}

// LLMConfig holds LLM configuration for movie suggestions
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or mistral:instruct)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=1000,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=180s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt override (optional)"`
}

// EngineConfig holds curation engine budgets. All limits are explicit so
// multiple runs with different budgets can coexist in tests.
type EngineConfig struct {
	MaxWorkers     int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=10,description=Maximum concurrent metadata lookups"`
	PoolSize       int           `yaml:"pool_size" json:"pool_size" jsonschema:"default=1000,description=Maximum candidate pool size"`
	MaxSuggestions int           `yaml:"max_suggestions" json:"max_suggestions" jsonschema:"default=40,description=Maximum AI suggestions per run"`
	MaxItems       int           `yaml:"max_items" json:"max_items" jsonschema:"default=15,description=Default maximum collection size"`
	RunTimeout     time.Duration `yaml:"run_timeout" json:"run_timeout" jsonschema:"default=10m,description=Wall-clock budget for a whole run"`
	CacheTTL       time.Duration `yaml:"cache_ttl" json:"cache_ttl" jsonschema:"default=24h,description=TTL for cached metadata lookups"`
	FuzzyThreshold float64       `yaml:"fuzzy_threshold" json:"fuzzy_threshold" jsonschema:"default=0.85,minimum=0,maximum=1,description=Minimum title similarity for fuzzy matches"`
}

// ScheduleConfig holds scheduler settings
type ScheduleConfig struct {
	CheckInterval time.Duration `yaml:"check_interval" json:"check_interval" jsonschema:"default=1h,description=How often to check for due curations"`
	PurgeInterval time.Duration `yaml:"purge_interval" json:"purge_interval" jsonschema:"default=12h,description=How often to purge expired cache entries"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables, tokens and keys come from the environment
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values with defaults
func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:reelscope.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Themes.Dir == "" {
		c.Themes.Dir = "themes"
	}

	if c.Metadata.Timeout == 0 {
		c.Metadata.Timeout = 10 * time.Second
	}
	if c.Library.Section == "" {
		c.Library.Section = "Movies"
	}
	if c.Library.Timeout == 0 {
		c.Library.Timeout = 30 * time.Second
	}

	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.7
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 1000
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 180 * time.Second
	}

	if c.Engine.MaxWorkers == 0 {
		c.Engine.MaxWorkers = 10
	}
	if c.Engine.PoolSize == 0 {
		c.Engine.PoolSize = 1000
	}
	if c.Engine.MaxSuggestions == 0 {
		c.Engine.MaxSuggestions = 40
	}
	if c.Engine.MaxItems == 0 {
		c.Engine.MaxItems = 15
	}
	if c.Engine.RunTimeout == 0 {
		c.Engine.RunTimeout = 10 * time.Minute
	}
	if c.Engine.CacheTTL == 0 {
		c.Engine.CacheTTL = 24 * time.Hour
	}
	if c.Engine.FuzzyThreshold == 0 {
		c.Engine.FuzzyThreshold = 0.85
	}

	if c.Schedule.CheckInterval == 0 {
		c.Schedule.CheckInterval = time.Hour
	}
	if c.Schedule.PurgeInterval == 0 {
		c.Schedule.PurgeInterval = 12 * time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Metadata.Endpoint == "" {
		return fmt.Errorf("metadata.endpoint is required")
	}
	if cfg.Library.Endpoint == "" {
		return fmt.Errorf("library.endpoint is required")
	}

	if cfg.LLM.Endpoint == "" {
		return fmt.Errorf("llm.endpoint is required")
	}
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Engine.FuzzyThreshold < 0 || cfg.Engine.FuzzyThreshold > 1 {
		return fmt.Errorf("engine.fuzzy_threshold must be between 0 and 1")
	}
	if cfg.Engine.MaxWorkers < 1 {
		return fmt.Errorf("engine.max_workers must be at least 1")
	}

	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetEngineConfig returns curation engine budgets
func (c *Config) GetEngineConfig() EngineConfig {
	return c.Engine
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}
