package config

import (
	"github.com/caarlos0/env/v11"
)

// Config holds the environment-backed settings for the server.
type Config struct {
	MongoURI string `env:"MONGOURI,required"`
	Port     string `env:"PORT" envDefault:"8080"`
	DBName   string `env:"DBNAME" envDefault:"mergington"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
