package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Debug                    bool   `envconfig:"debug"`
	Port                     int    `envconfig:"port"`
	Env                      string `envconfig:"env"`
	AccessControlAllowOrigin string `envconfig:"access_control_allow_origin"`
	SeedDemoData             bool   `envconfig:"seed_demo_data" default:"true"`
	MessageRateLimit         int    `envconfig:"message_rate_limit" default:"30"`
}

func Load() (*Config, error) {
	env := os.Getenv("GIN_MODE")
	if env != "release" {
		if err := godotenv.Load("./.env"); err != nil {
			log.Printf("couldn't load env vars: %v", err)
		}
	}

	c := &Config{}
	err := envconfig.Process("converse", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}
