package repository

import (
	"context"
	"fmt"
	"log"

	firebaseSDK "firebase.google.com/go"
	firebaseAuth "firebase.google.com/go/auth"

	"cloud.google.com/go/firestore"

	"learnify/internal/config"
	"learnify/internal/models"
)

// tokenVerifier is the part of the Firebase Auth client the repository needs.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseAuth.Token, error)
}

// FirebaseRepository reads courses from Firestore on behalf of an explicitly passed session.
type FirebaseRepository struct {
	authClient      tokenVerifier
	firestoreClient *firestore.Client

	coursesCollection string
}

func NewFirebaseRepository(ctx context.Context, app *firebaseSDK.App, cfg *config.ServerConfig) (*FirebaseRepository, error) {
	fr := &FirebaseRepository{
		coursesCollection: cfg.CoursesCollection,
	}
	if fr.coursesCollection == "" {
		fr.coursesCollection = models.FirestoreCoursesCollection
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("Auth client error: %v", err)
	}
	fr.authClient = authClient

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("Firestore client error: %v", err)
	}
	fr.firestoreClient = firestoreClient

	log.Printf("✅ Successfully created Firebase repository client for the %q collection", fr.coursesCollection)
	return fr, nil
}

// Close releases the underlying Firestore connection.
func (fr *FirebaseRepository) Close() error {
	if fr.firestoreClient == nil {
		return nil
	}
	return fr.firestoreClient.Close()
}
