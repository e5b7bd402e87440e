package config

import (
	"os"
)

type DatabaseConfig struct {
	Path string
}

func GetDatabaseConfig() (*DatabaseConfig, error) {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "./video_generator.db"
	}

	return &DatabaseConfig{
		Path: path,
	}, nil
}
