package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
)

var Config *ServerConfig

// ServerConfig is a struct that contains configuration values for the server.
type ServerConfig struct {
	// AllowedOrigins is a list of URLs that the server will accept requests from.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	// Port is the port the server should run on.
	Port int `env:"PORT"`

	// CredentialsFile is the path to the Firebase service account key. If empty, application default
	// credentials are used.
	CredentialsFile string `env:"CREDENTIALS_FILE"`
	// ProjectID is the Firebase project ID. If empty, it is inferred from the credentials.
	ProjectID string `env:"PROJECT_ID"`
	// CoursesCollection is the Firestore collection the home screen lists.
	CoursesCollection string `env:"COURSES_COLLECTION"`

	// SessionStorePath is the SQLite file holding the locally cached session. ":memory:" keeps it
	// in memory for the life of the process.
	SessionStorePath string `env:"SESSION_STORE_PATH"`
	// SessionTokenKey is the storage key of the cached session token.
	SessionTokenKey string `env:"SESSION_TOKEN_KEY"`
	// EmailKey is the storage key of the cached user email.
	EmailKey string `env:"EMAIL_KEY"`
	// SessionCookieName is the name of the cookie carrying a session token on stateless requests.
	SessionCookieName string `env:"SESSION_COOKIE_NAME"`
}

func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		AllowedOrigins:    []string{"http://localhost:3000"},
		Port:              8080,
		CredentialsFile:   "firebase-config.json",
		CoursesCollection: "courses",
		SessionStorePath:  "learnify-session.db",
		SessionTokenKey:   "userToken",
		EmailKey:          "email",
		SessionCookieName: "learnify-session",
	}
}

// Load returns the default configuration with any LEARNIFY_* environment variables applied on top.
func Load() (*ServerConfig, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "LEARNIFY_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a ServerConfig for values the server cannot run with.
func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.CoursesCollection == "" {
		return fmt.Errorf("courses collection must be a non-empty string")
	}
	if c.SessionTokenKey == "" || c.EmailKey == "" {
		return fmt.Errorf("session storage keys must be non-empty strings")
	}
	if c.SessionTokenKey == c.EmailKey {
		return fmt.Errorf("session token key and email key must differ, both are %q", c.EmailKey)
	}
	return nil
}

func init() {
	cfg, err := Load()
	if err != nil {
		log.Printf("❌ Invalid configuration (%v). Using the default configuration.", err)
		cfg = DefaultConfig()
	}
	Config = cfg
}
