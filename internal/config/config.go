package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"KEMAZON_API_BASE_URL" env-default:"http://localhost:8080/api"`
	Timeout time.Duration `yaml:"timeout" env:"KEMAZON_API_TIMEOUT" env-default:"10s"`
}

type NATSConfig struct {
	URL string `yaml:"url" env:"NATS_URL" env-default:"nats://localhost:4222"`
}

type HistoryConfig struct {
	PerPage int `yaml:"per_page" env:"KEMAZON_HISTORY_PER_PAGE" env-default:"5"`
}

type WatchConfig struct {
	ProductID int `yaml:"product_id" env:"KEMAZON_PRODUCT_ID" env-default:"0"`
}

type AuthConfig struct {
	Token    string `yaml:"token" env:"KEMAZON_ACCESS_TOKEN"`
	UserID   int    `yaml:"user_id" env:"KEMAZON_USER_ID" env-default:"0"`
	UserName string `yaml:"user_name" env:"KEMAZON_USER_NAME"`
}

type LoggerConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type Config struct {
	API     APIConfig     `yaml:"api"`
	NATS    NATSConfig    `yaml:"nats"`
	History HistoryConfig `yaml:"history"`
	Watch   WatchConfig   `yaml:"watch"`
	Auth    AuthConfig    `yaml:"auth"`
	Logger  LoggerConfig  `yaml:"logger"`
}

func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	err := cleanenv.ReadConfig(path, &cfg)
	if err != nil {
		if _, ok := err.(*os.PathError); ok {
			log.Printf("Warning: Config file not found at %s, loading from environment variables only.", path)
			if errEnv := cleanenv.ReadEnv(&cfg); errEnv != nil {
				return nil, errEnv
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("KEMAZON_CONFIG_PATH")
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return cfg
}
