package config

import "os"

// Config holds everything the app reads from the environment. Secrets for
// the OAuth providers are read directly by middleware.InitAuth.
type Config struct {
	Addr           string
	DatabasePath   string
	SiteBaseURL    string
	UploadURL      string
	CDNAccessToken string
}

func Load() Config {
	return Config{
		Addr:           getenv("ADDR", ":8080"),
		DatabasePath:   getenv("DATABASE_PATH", "admin.db"),
		SiteBaseURL:    getenv("SITE_BASE_URL", "https://example.com"),
		UploadURL:      os.Getenv("UPLOAD_URL"),
		CDNAccessToken: os.Getenv("CDN_ACCESS_TOKEN"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
