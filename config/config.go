package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Merval chat specifics
	OpenAI  OpenAIConfig
	Backend BackendConfig
	Auth    AuthConfig
	Chat    ChatConfig

	// Storage
	MongoDB MongoDBConfig
	Redis   RedisConfig

	// Abuse protection
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type OpenAIConfig struct {
	APIKey      string
	Model       string
	AssistantID string
}

// BackendConfig points at the main platform API used to fetch user context.
type BackendConfig struct {
	URL     string
	Timeout string
}

type AuthConfig struct {
	JWTSecretKey  string
	ExpireMinutes int
}

type ChatConfig struct {
	HistoryWindow    int // messages loaded for completion context
	MaxMessageLength int
	HistoryTTLHours  int // retention for redis-backed history
}

type MongoDBConfig struct {
	URL      string
	Database string
}

type RedisConfig struct {
	URL string
}

type RateLimitConfig struct {
	Enabled   bool
	PerMinute int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	if host := viper.GetString("host"); host != "" {
		cfg.HTTPServer.Host = host
	}
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenAI
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.AssistantID = viper.GetString("openai.assistant_id")

	// Backend API for user context
	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.Timeout = viper.GetString("backend.timeout")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.URL = backendURL
	}

	// Auth
	cfg.Auth.JWTSecretKey = viper.GetString("jwt.secret_key")
	cfg.Auth.ExpireMinutes = viper.GetInt("jwt.expire_minutes")
	if secret := viper.GetString("jwt_secret_key"); secret != "" {
		cfg.Auth.JWTSecretKey = secret
	}

	// Chat behavior
	cfg.Chat.HistoryWindow = viper.GetInt("chat.history_window")
	cfg.Chat.MaxMessageLength = viper.GetInt("chat.max_message_length")
	cfg.Chat.HistoryTTLHours = viper.GetInt("chat.history_ttl_hours")

	// Storage
	cfg.MongoDB.URL = viper.GetString("mongodb.url")
	cfg.MongoDB.Database = viper.GetString("mongodb.database")
	cfg.Redis.URL = viper.GetString("redis.url")

	// Rate limiting
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.host", "0.0.0.0")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("openai.model", "gpt-3.5-turbo-0125")

	viper.SetDefault("backend.url", "http://localhost:3001")
	viper.SetDefault("backend.timeout", "5s")

	viper.SetDefault("jwt.expire_minutes", 30)

	viper.SetDefault("chat.history_window", 10)
	viper.SetDefault("chat.max_message_length", 2000)
	viper.SetDefault("chat.history_ttl_hours", 24)

	viper.SetDefault("mongodb.database", "merval")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_minute", 30)
}

// validate rejects configurations the service cannot run with. A missing
// OpenAI key is allowed: the responder degrades to static replies.
func validate(cfg *Config) error {
	if cfg.Auth.JWTSecretKey == "" {
		return fmt.Errorf("jwt secret key is required (JWT_SECRET_KEY)")
	}
	if cfg.Chat.HistoryWindow <= 0 {
		return fmt.Errorf("chat.history_window must be positive")
	}
	if cfg.Chat.MaxMessageLength <= 0 {
		return fmt.Errorf("chat.max_message_length must be positive")
	}
	if cfg.MongoDB.URL != "" && cfg.MongoDB.Database == "" {
		return fmt.Errorf("mongodb.database is required when mongodb.url is set")
	}
	return nil
}
