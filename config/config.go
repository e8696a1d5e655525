package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage & security
	Database  DatabaseConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Encrypter EncrypterConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Domains
	Planner        PlannerConfig
	Analysis       AnalysisConfig
	RateLimit      RateLimitConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	SecretKey string
	TTL       time.Duration
}

type CookieConfig struct {
	Name   string
	Domain string
	Secure bool
	MaxAge int
}

type EncrypterConfig struct {
	BcryptCost int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // whole fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type PlannerConfig struct {
	Temperature      float64
	MaxTokens        int
	DefaultListColor string
}

type AnalysisConfig struct {
	MonthlyGoal         int
	LeaderboardSize     int
	LeaderboardCacheTTL time.Duration
}

type RateLimitConfig struct {
	ChatPerMin int
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Environment.Timezone = viper.GetString("environment.timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage & security
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = expandEnvVar(viper.GetString("database.dsn"))
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	cfg.Database.MaxIdleConns = viper.GetInt("database.max_idle_conns")
	cfg.Database.ConnMaxLifetime = viper.GetDuration("database.conn_max_lifetime")

	cfg.JWT.SecretKey = expandEnvVar(viper.GetString("jwt.secret_key"))
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")

	cfg.Cookie.Name = viper.GetString("cookie.name")
	cfg.Cookie.Domain = viper.GetString("cookie.domain")
	cfg.Cookie.Secure = viper.GetBool("cookie.secure")
	cfg.Cookie.MaxAge = viper.GetInt("cookie.max_age")

	cfg.Encrypter.BcryptCost = viper.GetInt("encrypter.bcrypt_cost")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}
	// Single-provider shortcut from env, e.g. DEEPSEEK_API_KEY=...
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("deepseek_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "deepseek",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("deepseek_model"),
			})
		}
	}

	// Domains
	cfg.Planner.Temperature = viper.GetFloat64("planner.temperature")
	cfg.Planner.MaxTokens = viper.GetInt("planner.max_tokens")
	cfg.Planner.DefaultListColor = viper.GetString("planner.default_list_color")

	cfg.Analysis.MonthlyGoal = viper.GetInt("analysis.monthly_goal")
	cfg.Analysis.LeaderboardSize = viper.GetInt("analysis.leaderboard_size")
	cfg.Analysis.LeaderboardCacheTTL = viper.GetDuration("analysis.leaderboard_cache_ttl")

	cfg.RateLimit.ChatPerMin = viper.GetInt("rate_limit.chat_per_min")

	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key is required")
	}
	if cfg.Database.DSN == "" {
		return errors.New("database.dsn is required")
	}
	if _, err := time.LoadLocation(cfg.Environment.Timezone); err != nil {
		return fmt.Errorf("environment.timezone: %w", err)
	}
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return err
		}
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.timezone", "Asia/Shanghai")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.dsn", "file:planner.db?_busy_timeout=5000&_foreign_keys=on")
	viper.SetDefault("database.max_open_conns", 10)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "30m")

	viper.SetDefault("jwt.ttl", "720h")
	viper.SetDefault("cookie.name", "planner_session")
	viper.SetDefault("cookie.max_age", 30*24*60*60)
	viper.SetDefault("encrypter.bcrypt_cost", 10)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "90s")

	viper.SetDefault("planner.temperature", 0.7)
	viper.SetDefault("planner.max_tokens", 2000)
	viper.SetDefault("planner.default_list_color", "#3B82F6")

	viper.SetDefault("analysis.monthly_goal", 50)
	viper.SetDefault("analysis.leaderboard_size", 10)
	viper.SetDefault("analysis.leaderboard_cache_ttl", "1m")

	viper.SetDefault("rate_limit.chat_per_min", 10)

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := viper.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	for _, d := range []string{cfg.RetryDelay, cfg.MaxTotalTimeout} {
		if d == "" {
			continue
		}
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("llm: invalid duration %q: %w", d, err)
		}
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// float64 when the value came from JSON
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
