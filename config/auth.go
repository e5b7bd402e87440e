package config

import (
	"os"
)

type AuthConfig struct {
	Enabled bool
	JwksUrl string
}

// GetAuthConfig enables JWT validation only when a JWKS endpoint is
// configured; the service runs open otherwise.
func GetAuthConfig() (*AuthConfig, error) {
	jwksUrl := os.Getenv("AUTH_JWKS_URL")

	return &AuthConfig{
		Enabled: jwksUrl != "",
		JwksUrl: jwksUrl,
	}, nil
}
