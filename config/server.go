package config

import (
	"os"
	"strings"
)

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

func GetServerConfig() (*ServerConfig, error) {
	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	origins := []string{"http://localhost:3000"}
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return &ServerConfig{
		Addr:           addr,
		AllowedOrigins: origins,
	}, nil
}
