package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	BindAddress  string `env:"BIND_ADDRESS" env-default:":8080"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"debug"`
	RatesFile    string `env:"RATES_FILE" env-default:""`
	SnapshotDate string `env:"RATES_SNAPSHOT_DATE" env-default:"2025-06-30"`
}

func New() *Config {
	// a missing .env is fine, env vars still apply
	//nolint: errcheck
	godotenv.Load()

	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Panicf("cleanenv.ReadEnv(cfg): %v", err)
	}

	return cfg
}
