package bootstrap

import (
	"github.com/digivend/credit-shop/internal/pkg/database"
	"github.com/digivend/credit-shop/internal/pkg/env"
	"github.com/joho/godotenv"
)

type ServerConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
	JwtSecret  string
}

// LoadServerConfig reads an optional .env file and overrides the
// defaults with whatever environment variables are set.
func LoadServerConfig() ServerConfig {
	_ = godotenv.Load()

	cfg := ServerConfig{
		DbSettings: database.PostgresSettings{
			User:       "admin",
			Password:   "password",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "credit_shop_db",
			SSlEnabled: false,
		},
		HttpPort:  ":8080",
		JwtSecret: "test-secret",
	}

	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetBoolFromEnv(env.EnvDatabaseSSL, &cfg.DbSettings.SSlEnabled)
	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)

	return cfg
}
