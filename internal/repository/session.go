package repository

import (
	"context"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"learnify/internal/qerrors"
)

// VerifySession verifies that the given session token is a valid Firebase ID token and returns the
// UID it belongs to.
func (fr *FirebaseRepository) VerifySession(ctx context.Context, token string) (string, error) {
	if err := validateToken(token); err != nil {
		return "", status.Error(codes.Unauthenticated, err.Error())
	}
	if fr.authClient == nil {
		return "", qerrors.CourseSourceUnavailableError
	}

	decoded, err := fr.authClient.VerifyIDToken(ctx, token)
	if err != nil {
		return "", status.Errorf(codes.Unauthenticated, "%v: %v", qerrors.InvalidSessionError, err)
	}

	return decoded.UID, nil
}

func validateToken(token string) error {
	if token == "" {
		return fmt.Errorf("session token must be a non-empty string")
	}
	if len(token) > 4096 {
		return fmt.Errorf("session token must not be longer than 4096 characters")
	}
	return nil
}
