package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type StorefrontConfig struct {
	Env        string `yaml:"env"`
	HTTPServer `yaml:"http_server"`
	StoreDB    `yaml:"store_db"`
	LogConfig  `yaml:"log_config"`
	Kafka      `yaml:"kafka"`
	Auth       `yaml:"auth"`
	Payments   `yaml:"payments"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type StoreDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type Kafka struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"STOREFRONT_JWT_SECRET"`
}

type Payments struct {
	// Orders still unpaid after this long are swept to cancelled.
	StaleOrderTTL time.Duration `yaml:"stale_order_ttl" env-default:"24h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"1h"`
}

func MustLoad() *StorefrontConfig {

	// Processing env config variable and file
	configPath := os.Getenv("STOREFRONT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("STOREFRONT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg StorefrontConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
