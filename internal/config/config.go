package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Auth       Auth       `yaml:"auth"`
	Catalog    Catalog    `yaml:"catalog"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Storage struct {
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:"data/store.json"`
}

type Auth struct {
	SecretKey  string        `yaml:"secret_key" env:"AUTH_SECRET"`
	TokenTTL   time.Duration `yaml:"token_ttl" env-default:"24h"`
	LoginDelay time.Duration `yaml:"login_delay" env-default:"500ms"`
}

type Catalog struct {
	// Seed drives the generated numeric fields of the mock catalog.
	// Zero picks a time-based seed, so catalog contents vary per run.
	Seed           int64         `yaml:"seed" env-default:"0"`
	PageSize       int           `yaml:"page_size" env-default:"9"`
	SearchDebounce time.Duration `yaml:"search_debounce" env-default:"300ms"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Can not read config file %s", err)
	}

	return &cfg
}
