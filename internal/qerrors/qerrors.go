package qerrors

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// Course errors
	CourseSourceUnavailableError = errors.New("course source is not configured")

	// Session errors
	InvalidSessionError       = errors.New("the session token is invalid or expired")
	StorageNotConfiguredError = errors.New("session storage is not configured")
	InvalidStorageKeyError    = errors.New("storage key must be a non-empty string")

	// Screen errors
	ScreenClosedError = errors.New("the home screen has been closed")
	StaleFetchError   = errors.New("a newer refresh superseded this one")
)

// Message returns the human-readable message shown to the user for a fetch failure. Firestore
// surfaces gRPC statuses, whose message is used without the "rpc error: code = ..." prefix;
// every other error is shown as-is. Network, permission and not-found failures all collapse
// into this one representation.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if s, ok := status.FromError(err); ok && s.Message() != "" {
		return s.Message()
	}
	var se interface{ GRPCStatus() *status.Status }
	if errors.As(err, &se) && se.GRPCStatus().Message() != "" {
		return se.GRPCStatus().Message()
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "unknown error"
}

// IsCanceled reports whether err is a cancellation, either the context's own error or the
// Canceled status Firestore returns when the call's context is cancelled mid-flight.
func IsCanceled(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var se interface{ GRPCStatus() *status.Status }
	return errors.As(err, &se) && se.GRPCStatus().Code() == codes.Canceled
}
