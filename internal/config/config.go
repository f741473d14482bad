// Package config loads service configuration from file and environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Dataset    DatasetConfig    `mapstructure:"dataset"`
	Retrieval  RetrievalConfig  `mapstructure:"retrieval"`
	Audio      AudioConfig      `mapstructure:"audio"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Mongo      MongoConfig      `mapstructure:"mongo"`
	Translator TranslatorConfig `mapstructure:"translator"`
	Admin      AdminConfig      `mapstructure:"admin"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	CORSOrigins string `mapstructure:"cors_origins"`
}

// DatasetConfig points at the startup data: the teaching corpus and the
// Common Voice audio table.
type DatasetConfig struct {
	CorpusPath string `mapstructure:"corpus_path"`
	AudioTSV   string `mapstructure:"audio_tsv"`
	ClipsDir   string `mapstructure:"clips_dir"`
}

// RetrievalConfig tunes the TF-IDF index.
type RetrievalConfig struct {
	MaxVocab      int     `mapstructure:"max_vocab"`
	MinSimilarity float64 `mapstructure:"min_similarity"`
}

// AudioConfig tunes the clip matcher.
type AudioConfig struct {
	FuzzyThreshold float64 `mapstructure:"fuzzy_threshold"`
	MaxSuggestions int     `mapstructure:"max_suggestions"`
}

// RedisConfig holds the analytics cache connection settings.
type RedisConfig struct {
	Addr string `mapstructure:"addr"`
}

// MongoConfig holds the archive database connection settings.
type MongoConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

// TranslatorConfig holds the remote translation endpoint settings. The
// translator runs degraded when the endpoint or API key is empty.
type TranslatorConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	TimeoutMS int    `mapstructure:"timeout_ms"`
}

// AdminConfig holds the admin gate. Admin access is a single email equality
// check against this value.
type AdminConfig struct {
	Email string `mapstructure:"email"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.cors_origins", "*")

	viper.SetDefault("dataset.corpus_path", "./data/teaching_corpus.json")
	viper.SetDefault("dataset.audio_tsv", "./data/cv-corpus/rw/other.tsv")
	viper.SetDefault("dataset.clips_dir", "./data/cv-corpus/rw/clips")

	viper.SetDefault("retrieval.max_vocab", 5000)
	viper.SetDefault("retrieval.min_similarity", 0.1)

	viper.SetDefault("audio.fuzzy_threshold", 0.8)
	viper.SetDefault("audio.max_suggestions", 3)

	viper.SetDefault("redis.addr", "localhost:6379")

	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "twigane")

	viper.SetDefault("translator.endpoint", "")
	viper.SetDefault("translator.api_key", "")
	viper.SetDefault("translator.model", "mbazaNLP/Nllb_finetuned_general_en_kin")
	viper.SetDefault("translator.timeout_ms", 30000)

	viper.SetDefault("admin.email", "")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
