package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP       HTTP
	Logger     Logger
	QuickBooks QuickBooks
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"3000"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type QuickBooks struct {
	ClientID     string `env:"QBO_CLIENT_ID"`
	ClientSecret string `env:"QBO_CLIENT_SECRET"`
	Environment  string `env:"QBO_ENVIRONMENT" envDefault:"sandbox"` // sandbox or production
	RedirectURI  string `env:"QBO_REDIRECT_URI"`
	RealmID      string `env:"QBO_REALM_ID" envDefault:""` // fallback when the OAuth callback omits realmId
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
