package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the application's configuration
type Config struct {
	BotName  string `mapstructure:"BOT_NAME"`
	WebPort  int    `mapstructure:"WEB_PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	MinRelevanceScore       float64 `mapstructure:"MIN_RELEVANCE_SCORE"`
	HighRelevanceScore      float64 `mapstructure:"HIGH_RELEVANCE_SCORE"`
	MaxResults              int     `mapstructure:"MAX_RESULTS"`
	UseSynonyms             bool    `mapstructure:"USE_SYNONYMS"`
	UseOracleRelevanceCheck bool    `mapstructure:"USE_ORACLE_RELEVANCE_CHECK"`

	OracleHost            string        `mapstructure:"ORACLE_HOST"`
	OracleModel           string        `mapstructure:"ORACLE_MODEL"`
	OracleAPIKey          string        `mapstructure:"ORACLE_API_KEY"`
	OracleMaxTokens       int           `mapstructure:"ORACLE_MAX_TOKENS"`
	OracleTemperature     float64       `mapstructure:"ORACLE_TEMPERATURE"`
	OracleRequestTimeout  time.Duration `mapstructure:"ORACLE_REQUEST_TIMEOUT"`
	OracleFallbackEnabled bool          `mapstructure:"ORACLE_FALLBACK_ENABLED"`
	AnswerCacheSize       int           `mapstructure:"ANSWER_CACHE_SIZE"`

	MaxQueryLength           int  `mapstructure:"MAX_QUERY_LENGTH"`
	MaxSearchLength          int  `mapstructure:"MAX_SEARCH_LENGTH"`
	EnableInputSanitization  bool `mapstructure:"ENABLE_INPUT_SANITIZATION"`
	EnableInjectionDetection bool `mapstructure:"ENABLE_INJECTION_DETECTION"`
	MaxMessageLength         int  `mapstructure:"MAX_MESSAGE_LENGTH"`
}

func Load(logger *zap.Logger) *Config {
	var config Config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")        // For running locally
	viper.AddConfigPath("../")      // For running from docker subdir
	viper.AddConfigPath("./config") // Common config folder
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("BOT_NAME", "QA Ментор")
	viper.SetDefault("WEB_PORT", 8080)
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("MIN_RELEVANCE_SCORE", 5.0)
	viper.SetDefault("HIGH_RELEVANCE_SCORE", 8.0)
	viper.SetDefault("MAX_RESULTS", 3)
	viper.SetDefault("USE_SYNONYMS", true)
	viper.SetDefault("USE_ORACLE_RELEVANCE_CHECK", true)

	viper.SetDefault("ORACLE_HOST", "")
	viper.SetDefault("ORACLE_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("ORACLE_API_KEY", "")
	viper.SetDefault("ORACLE_MAX_TOKENS", 500)
	viper.SetDefault("ORACLE_TEMPERATURE", 0.7)
	viper.SetDefault("ORACLE_REQUEST_TIMEOUT", 30)
	viper.SetDefault("ORACLE_FALLBACK_ENABLED", true)
	viper.SetDefault("ANSWER_CACHE_SIZE", 256)

	viper.SetDefault("MAX_QUERY_LENGTH", 500)
	viper.SetDefault("MAX_SEARCH_LENGTH", 300)
	viper.SetDefault("ENABLE_INPUT_SANITIZATION", true)
	viper.SetDefault("ENABLE_INJECTION_DETECTION", true)
	viper.SetDefault("MAX_MESSAGE_LENGTH", 4000)

	if err := viper.ReadInConfig(); err != nil {
		if logger != nil {
			logger.Warn("Could not read config file, using defaults/env vars", zap.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		// Config unmarshaling is critical - fail fast during bootstrap
		if logger != nil {
			logger.Fatal("Unable to decode config into struct", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "FATAL: Unable to decode config into struct: %v\n", err)
			os.Exit(1)
		}
	}

	// Convert seconds to proper time.Duration
	config.OracleRequestTimeout = config.OracleRequestTimeout * time.Second

	return &config
}
