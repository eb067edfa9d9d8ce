package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	firebaseAuth "firebase.google.com/go/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cloud.google.com/go/firestore"

	"learnify/internal/models"
	"learnify/internal/qerrors"
)

type fakeVerifier struct {
	uid   string
	err   error
	calls int
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*firebaseAuth.Token, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &firebaseAuth.Token{UID: f.uid}, nil
}

func TestCourseFromDocument(t *testing.T) {
	c, err := courseFromDocument("a", map[string]interface{}{
		"courseName": "Go Basics",
		"credits":    int64(3),
		"id":         "payload-id",
	})
	require.NoError(t, err)

	assert.Equal(t, "a", c.ID)
	name, ok := c.Name()
	assert.True(t, ok)
	assert.Equal(t, "Go Basics", name)
	assert.Equal(t, int64(3), c.Fields["credits"])
	assert.Equal(t, "payload-id", c.Fields["id"])
}

func TestCourseFromDocumentWithoutFields(t *testing.T) {
	c, err := courseFromDocument("empty", nil)
	require.NoError(t, err)

	assert.Equal(t, "empty", c.ID)
	assert.NotNil(t, c.Fields)
	_, ok := c.Name()
	assert.False(t, ok)
}

func TestCourseFromDocumentRequiresID(t *testing.T) {
	_, err := courseFromDocument("", map[string]interface{}{"courseName": "x"})
	assert.Error(t, err)
}

func TestListCoursesWithoutClient(t *testing.T) {
	var fr *FirebaseRepository
	_, err := fr.ListCourses(context.Background(), nil)
	assert.ErrorIs(t, err, qerrors.CourseSourceUnavailableError)
}

func TestListCoursesReturnsVerificationFailure(t *testing.T) {
	fr := &FirebaseRepository{authClient: &fakeVerifier{err: errors.New("ID token has expired")}}
	token := "expired-token"

	_, err := fr.ListCourses(context.Background(), &token)
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.NotEmpty(t, qerrors.Message(err))
	assert.Contains(t, qerrors.Message(err), "ID token has expired")
}

func TestListCoursesTreatsEmptyTokenAsAbsent(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("should not be called")}
	fr := &FirebaseRepository{authClient: verifier}
	empty := ""

	_, err := fr.ListCourses(context.Background(), &empty)
	assert.ErrorIs(t, err, qerrors.CourseSourceUnavailableError)
	assert.Zero(t, verifier.calls)
}

func TestListCoursesVerifiesPresentToken(t *testing.T) {
	verifier := &fakeVerifier{uid: "user-1"}
	fr := &FirebaseRepository{authClient: verifier}
	token := "tok"

	_, err := fr.ListCourses(context.Background(), &token)
	assert.ErrorIs(t, err, qerrors.CourseSourceUnavailableError)
	assert.Equal(t, 1, verifier.calls)
}

func TestVerifySession(t *testing.T) {
	fr := &FirebaseRepository{authClient: &fakeVerifier{uid: "user-1"}}

	uid, err := fr.VerifySession(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestVerifySessionRejectsEmptyToken(t *testing.T) {
	fr := &FirebaseRepository{authClient: &fakeVerifier{uid: "user-1"}}

	_, err := fr.VerifySession(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestVerifySessionSurfacesVerifierError(t *testing.T) {
	fr := &FirebaseRepository{authClient: &fakeVerifier{err: errors.New("ID token has expired")}}

	_, err := fr.VerifySession(context.Background(), "token")
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Contains(t, qerrors.Message(err), "ID token has expired")
}

// TestListCoursesAgainstEmulator runs only when a Firestore emulator is available.
func TestListCoursesAgainstEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "learnify-test")
	require.NoError(t, err)
	defer client.Close()

	collection := "courses_" + t.Name()
	col := client.Collection(collection)
	_, err = col.Doc("a").Set(ctx, map[string]interface{}{"courseName": "Go Basics"})
	require.NoError(t, err)
	_, err = col.Doc("b").Set(ctx, map[string]interface{}{"courseName": 42})
	require.NoError(t, err)
	defer func() {
		_, _ = col.Doc("a").Delete(ctx)
		_, _ = col.Doc("b").Delete(ctx)
	}()

	fr := &FirebaseRepository{firestoreClient: client, coursesCollection: collection}
	courses, err := fr.ListCourses(ctx, nil)
	require.NoError(t, err)
	require.Len(t, courses, 2)

	byID := map[string]*models.Course{}
	for _, c := range courses {
		byID[c.ID] = c
	}
	name, ok := byID["a"].Name()
	assert.True(t, ok)
	assert.Equal(t, "Go Basics", name)
	_, ok = byID["b"].Name()
	assert.False(t, ok)
}
