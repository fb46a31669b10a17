package types

import (
	"os"
	"strings"
)

const ContextUserKey = "user"

// TokenCookieName is the cookie carrying the session JWT.
const TokenCookieName = "token"

var (
	// Default allowed origins for development
	defaultOrigins = []string{
		"http://localhost:8080",
		"http://localhost:3000",
	}

	AllowedOrigins = initAllowedOrigins()
)

func initAllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowedOrigins := os.Getenv("ALLOWED_ORIGINS"); allowedOrigins != "" {
		envOrigins := strings.Split(allowedOrigins, ",")
		for _, origin := range envOrigins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}
