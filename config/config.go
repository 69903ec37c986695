package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chat platform
	Discord DiscordConfig
	Auth    AuthConfig

	// LLM Provider Abstraction
	LLM       LLMConfig
	Inference InferenceConfig
	Tools     ToolsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int    `validate:"required,min=1,max=65535"`
	Mode string `validate:"required,oneof=debug release test"`
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DiscordConfig struct {
	BotToken string
	// WebhookSecret signs the events the gateway relay forwards to the webhook.
	WebhookSecret   string `validate:"required_with=BotToken"`
	BotUserID       string
	APIURL          string `validate:"omitempty,url"`
	CommandPrefix   string `validate:"required"`
	RateLimitPerMin int    `validate:"min=0"`
}

// AuthConfig lists who may run configuration commands.
// APIToken enables the operator command API. It stays off when empty.
type AuthConfig struct {
	UserIDs  []string
	RoleIDs  []string
	APIToken string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers         []ProviderConfig `yaml:"providers" validate:"dive"`
	FallbackEnabled   bool             `yaml:"fallback_enabled"`
	RetryAttempts     int              `yaml:"retry_attempts" validate:"min=1"`
	RetryDelay        time.Duration    `yaml:"retry_delay"`
	RateLimitCooldown time.Duration    `yaml:"rate_limit_cooldown"`
	MaxTotalTimeout   time.Duration    `yaml:"max_total_timeout"`
}

// ProviderModel returns the configured default model of the named provider, or "" when unset.
func (c LLMConfig) ProviderModel(name string) string {
	for _, p := range c.Providers {
		if p.Name == name {
			return p.Model
		}
	}
	return ""
}

// ProviderConfig holds configuration for a single LLM backend
type ProviderConfig struct {
	Name           string        `yaml:"name" validate:"required,oneof=groq gemini"`
	Enabled        bool          `yaml:"enabled"`
	Priority       int           `yaml:"priority"`
	APIKey         string        `yaml:"api_key"`
	BaseURL        string        `yaml:"base_url,omitempty"`
	Model          string        `yaml:"model" validate:"required"`
	FallbackModels []string      `yaml:"fallback_models"`
	Timeout        time.Duration `yaml:"timeout"`
}

// InferenceConfig seeds the runtime provider state.
type InferenceConfig struct {
	Provider        string `validate:"required,oneof=groq gemini"`
	Enabled         bool
	Temperature     float64 `validate:"min=0,max=2"`
	MaxTokens       int     `validate:"min=1"`
	MemoryLimit     int     `validate:"min=1"`
	SystemPrompt    string  `validate:"required"`
	ImageGeneration bool
	MemoryTTL       time.Duration `validate:"min=0"`
	MaxUsers        int           `validate:"min=1"`
	// VideoCapableModels take YouTube links as video input on the gemini backend.
	VideoCapableModels []string
}

type ToolsConfig struct {
	Enabled         bool
	TavilyAPIKey    string
	TavilyURL       string
	ImageModel      string
	DefaultTimezone string
	// CapableModels receive the tool schema. Other models get plain chat.
	CapableModels []string
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
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Chat platform
	cfg.Discord.BotToken = viper.GetString("discord.bot_token")
	if token := viper.GetString("discord_bot_token"); token != "" {
		cfg.Discord.BotToken = token
	}
	cfg.Discord.WebhookSecret = viper.GetString("discord.webhook_secret")
	cfg.Discord.BotUserID = viper.GetString("discord.bot_user_id")
	cfg.Discord.APIURL = viper.GetString("discord.api_url")
	cfg.Discord.CommandPrefix = viper.GetString("discord.command_prefix")
	cfg.Discord.RateLimitPerMin = viper.GetInt("discord.rate_limit_per_min")

	// Env vars arrive as comma separated strings, config files as lists.
	cfg.Auth.UserIDs = getStringList("auth.user_ids")
	cfg.Auth.RoleIDs = getStringList("auth.role_ids")
	cfg.Auth.APIToken = viper.GetString("auth.api_token")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetDuration("llm.retry_delay")
	cfg.LLM.RateLimitCooldown = viper.GetDuration("llm.rate_limit_cooldown")
	cfg.LLM.MaxTotalTimeout = viper.GetDuration("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:           getStringFromMap(providerMap, "name"),
						Enabled:        getBoolFromMap(providerMap, "enabled"),
						Priority:       getIntFromMap(providerMap, "priority"),
						APIKey:         expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:        getStringFromMap(providerMap, "base_url"),
						Model:          getStringFromMap(providerMap, "model"),
						FallbackModels: getStringSliceFromMap(providerMap, "fallback_models"),
						Timeout:        getDurationFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Inference defaults for the runtime provider state
	cfg.Inference.Provider = viper.GetString("inference.provider")
	cfg.Inference.Enabled = viper.GetBool("inference.enabled")
	cfg.Inference.Temperature = viper.GetFloat64("inference.temperature")
	cfg.Inference.MaxTokens = viper.GetInt("inference.max_tokens")
	cfg.Inference.MemoryLimit = viper.GetInt("inference.memory_limit")
	cfg.Inference.SystemPrompt = viper.GetString("inference.system_prompt")
	cfg.Inference.ImageGeneration = viper.GetBool("inference.image_generation")
	cfg.Inference.MemoryTTL = viper.GetDuration("inference.memory_ttl")
	cfg.Inference.MaxUsers = viper.GetInt("inference.max_users")
	cfg.Inference.VideoCapableModels = getStringList("inference.video_capable_models")

	// Tools
	cfg.Tools.Enabled = viper.GetBool("tools.enabled")
	cfg.Tools.TavilyAPIKey = viper.GetString("tools.tavily_api_key")
	if tavilyKey := viper.GetString("tavily_api_key"); tavilyKey != "" {
		cfg.Tools.TavilyAPIKey = tavilyKey
	}
	cfg.Tools.TavilyURL = viper.GetString("tools.tavily_url")
	cfg.Tools.ImageModel = viper.GetString("tools.image_model")
	cfg.Tools.DefaultTimezone = viper.GetString("tools.default_timezone")
	cfg.Tools.CapableModels = getStringList("tools.capable_models")

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct constraints and the cross-field LLM rules.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return validateLLMConfig(&cfg.LLM)
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("discord.api_url", "https://discord.com/api/v10")
	viper.SetDefault("discord.command_prefix", "!")
	viper.SetDefault("discord.rate_limit_per_min", 20)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.rate_limit_cooldown", "65s")
	viper.SetDefault("llm.max_total_timeout", "5m")
	viper.SetDefault("llm.providers", []interface{}{
		map[string]interface{}{
			"name":     "groq",
			"enabled":  true,
			"priority": 1,
			"api_key":  "${GROQ_API_KEY}",
			"model":    "meta-llama/llama-4-scout-17b-16e-instruct",
			"fallback_models": []interface{}{
				"llama-3.3-70b-versatile",
				"llama-3.1-8b-instant",
				"gemma2-9b-it",
			},
			"timeout": "60s",
		},
		map[string]interface{}{
			"name":     "gemini",
			"enabled":  true,
			"priority": 2,
			"api_key":  "${GEMINI_API_KEY}",
			"model":    "gemini-2.5-pro",
			"timeout":  "120s",
		},
	})

	viper.SetDefault("inference.provider", "groq")
	viper.SetDefault("inference.enabled", true)
	viper.SetDefault("inference.temperature", 1.0)
	viper.SetDefault("inference.max_tokens", 1000)
	viper.SetDefault("inference.memory_limit", 5)
	viper.SetDefault("inference.system_prompt", "You are a helpful assistant.")
	viper.SetDefault("inference.image_generation", false)
	viper.SetDefault("inference.memory_ttl", "24h")
	viper.SetDefault("inference.max_users", 10000)
	viper.SetDefault("inference.video_capable_models", []string{"gemini-1.5-flash", "gemini-1.5-pro"})

	viper.SetDefault("tools.enabled", true)
	viper.SetDefault("tools.tavily_url", "https://api.tavily.com")
	viper.SetDefault("tools.image_model", "gemini-2.0-flash-exp-image-generation")
	viper.SetDefault("tools.default_timezone", "UTC")
	viper.SetDefault("tools.capable_models", []string{
		"meta-llama/llama-4-scout-17b-16e-instruct",
		"llama-3.3-70b-versatile",
		"llama-3.1-8b-instant",
		"gemini-2.5-pro",
		"gemini-2.0-flash",
		"gemini-2.0-pro",
		"gemini-1.5-flash",
		"gemini-1.5-pro",
	})
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)
	nameMap := make(map[string]bool)

	for _, provider := range cfg.Providers {
		if nameMap[provider.Name] {
			return fmt.Errorf("provider %s: configured more than once", provider.Name)
		}
		nameMap[provider.Name] = true

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

	return nil
}

func getStringList(key string) []string {
	raw := viper.Get(key)
	var items []string
	switch v := raw.(type) {
	case string:
		items = strings.Split(v, ",")
	case []interface{}:
		for _, item := range v {
			items = append(items, fmt.Sprint(item))
		}
	case []string:
		items = v
	}

	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
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
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func getStringSliceFromMap(m map[string]interface{}, key string) []string {
	val, ok := m[key]
	if !ok {
		return nil
	}
	switch v := val.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func getDurationFromMap(m map[string]interface{}, key string) time.Duration {
	s := getStringFromMap(m, key)
	if s == "" {
		return 0
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
