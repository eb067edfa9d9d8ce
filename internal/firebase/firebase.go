package firebase

import (
	"context"
	"fmt"
	"os"

	firebaseSDK "firebase.google.com/go"
	"google.golang.org/api/option"

	"learnify/internal/config"
)

// NewApp initializes a Firebase App from the server configuration. A missing credentials file falls
// back to application default credentials, which is also what the Firestore emulator expects.
func NewApp(ctx context.Context, cfg *config.ServerConfig) (*firebaseSDK.App, error) {
	var fbConfig *firebaseSDK.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebaseSDK.Config{ProjectID: cfg.ProjectID}
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); err == nil {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		}
	}

	app, err := firebaseSDK.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}
	return app, nil
}
