package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Exam   ExamConfig
	CORS   CORSConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// GeminiConfig holds the credential and the ordered model fallback chain for
// the external generative service. APIKey may be empty; that is a deployment
// misconfiguration surfaced per request, not a startup failure.
type GeminiConfig struct {
	APIKey  string
	Models  []string
	Timeout time.Duration
}

// ExamConfig bounds the generation parameters. Quantity is clamped into
// [MinQuantity, MaxQuantity] inclusive.
type ExamConfig struct {
	DefaultQuantity int
	MinQuantity     int
	MaxQuantity     int
}

type CORSConfig struct {
	AllowOrigins string
}

type LoggerConfig struct {
	Env   string
	Level string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 60)
	viper.SetDefault("server.write_timeout", 60)
	viper.SetDefault("gemini.models", []string{"gemini-1.5-flash", "gemini-1.5-flash-8b", "gemini-1.5-pro"})
	viper.SetDefault("gemini.timeout", 45)
	viper.SetDefault("exam.default_quantity", 10)
	viper.SetDefault("exam.min_quantity", 10)
	viper.SetDefault("exam.max_quantity", 30)
	viper.SetDefault("cors.allow_origins", "*")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		// Defaults plus env vars are a complete configuration; only a broken
		// config file is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey:  viper.GetString("gemini.api_key"),
			Models:  viper.GetStringSlice("gemini.models"),
			Timeout: viper.GetDuration("gemini.timeout") * time.Second,
		},
		Exam: ExamConfig{
			DefaultQuantity: viper.GetInt("exam.default_quantity"),
			MinQuantity:     viper.GetInt("exam.min_quantity"),
			MaxQuantity:     viper.GetInt("exam.max_quantity"),
		},
		CORS: CORSConfig{
			AllowOrigins: viper.GetString("cors.allow_origins"),
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if models := os.Getenv("GEMINI_MODELS"); models != "" {
		config.Gemini.Models = strings.Split(models, ",")
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		viper.Set("server.port", port)
		config.Server.Port = viper.GetInt("server.port")
	}
	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		config.CORS.AllowOrigins = origins
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	return config, nil
}
