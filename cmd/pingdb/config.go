package main

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/vanso-himesh/rs-mysql/config"
)

type Config struct {
	Host     string        `env:"MYSQL_HOST" envDefault:"localhost"`
	Port     int           `env:"MYSQL_PORT" envDefault:"3306"`
	Socket   string        `env:"MYSQL_SOCKET"`
	User     string        `env:"MYSQL_USERNAME" envDefault:"root"`
	Password string        `env:"MYSQL_PASSWORD"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"300s"`
	Interval time.Duration `env:"INTERVAL" envDefault:"1s"`
}

func ParseConfig(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return err
	}

	if cfg.Timeout <= 0 {
		return errors.New("TIMEOUT must be a positive duration")
	}

	if cfg.Interval <= 0 {
		return errors.New("INTERVAL must be a positive duration")
	}

	return nil
}

func (c Config) DBConfig() config.DBConfig {
	return config.DBConfig{
		Host:     c.Host,
		Port:     c.Port,
		Socket:   c.Socket,
		User:     c.User,
		Password: c.Password,
	}
}
