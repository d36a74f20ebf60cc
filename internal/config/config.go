package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Storage struct {
		BasePath string `yaml:"base_path"` // local filesystem root
		BaseURL  string `yaml:"base_url"`  // public URL prefix for stored files
	} `yaml:"storage"`

	Upload struct {
		MaxSize           int64    `yaml:"max_size"`           // max photo size in bytes
		AllowedExtensions []string `yaml:"allowed_extensions"` // without the leading dot
	} `yaml:"upload"`
}

var AppConfig *Config

// LoadConfig reads config/config.yaml unless DATABASE_URL is set, in which
// case the whole configuration comes from environment variables (the mode
// integration tests and container deploys use).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60
	if ttl := os.Getenv("JWT_TTL"); ttl != "" {
		if minutes, err := strconv.Atoi(ttl); err == nil {
			cfg.JWT.TTL = minutes
		}
	}

	cfg.Storage.BasePath = "./storage"
	cfg.Storage.BaseURL = "/storage"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./storage"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/storage"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 2048 * 1024 // 2048 KB
	}
	if len(cfg.Upload.AllowedExtensions) == 0 {
		cfg.Upload.AllowedExtensions = []string{"jpg", "jpeg", "png"}
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
}
