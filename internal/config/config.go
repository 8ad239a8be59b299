package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	SecretKey string `envconfig:"GRANA_SECRET_KEY" default:"change_me_in_production"`
	DBPath    string `envconfig:"GRANA_DB_PATH" default:"data/grana.db"`
	Port      string `envconfig:"GRANA_PORT" default:"8080"`

	AccessTokenTTL  time.Duration `envconfig:"GRANA_ACCESS_TOKEN_TTL" default:"4h"`
	RefreshTokenTTL time.Duration `envconfig:"GRANA_REFRESH_TOKEN_TTL" default:"24h"`

	// SMTP is optional; with no host configured recovery codes go to the log.
	SMTPHost     string `envconfig:"GRANA_SMTP_HOST"`
	SMTPPort     int    `envconfig:"GRANA_SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"GRANA_SMTP_USER"`
	SMTPPassword string `envconfig:"GRANA_SMTP_PASS"`
	MailFrom     string `envconfig:"GRANA_MAIL_FROM" default:"no-reply@grana.local"`
}

func Load() (App, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var c App
	err := envconfig.Process("", &c)
	return c, err
}
