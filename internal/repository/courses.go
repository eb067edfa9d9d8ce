package repository

import (
	"context"
	"fmt"

	"github.com/golang/glog"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"

	"learnify/internal/models"
	"learnify/internal/qerrors"
)

// ListCourses pulls the entire courses collection. No filtering, pagination or projection is
// requested. A present token is verified first and a verification failure is returned as the
// fetch failure; an absent or empty token is allowed through.
func (fr *FirebaseRepository) ListCourses(ctx context.Context, token *string) ([]*models.Course, error) {
	if fr == nil {
		return nil, qerrors.CourseSourceUnavailableError
	}

	if token != nil && *token != "" {
		if _, err := fr.VerifySession(ctx, *token); err != nil {
			return nil, err
		}
	}

	if fr.firestoreClient == nil {
		return nil, qerrors.CourseSourceUnavailableError
	}

	iter := fr.firestoreClient.Collection(fr.coursesCollection).Documents(ctx)
	defer iter.Stop()

	courses := make([]*models.Course, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		course, err := courseFromDocument(doc.Ref.ID, doc.Data())
		if err != nil {
			glog.Warningf("skipping course document %v: %v\n", doc.Ref.ID, err)
			continue
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// courseFromDocument tags a document's field payload with its store-assigned identifier.
func courseFromDocument(id string, data map[string]interface{}) (*models.Course, error) {
	if id == "" {
		return nil, fmt.Errorf("course document has no id")
	}

	var c models.Course
	if err := mapstructure.Decode(data, &c); err != nil {
		return nil, fmt.Errorf("error destructuring document: %v", err)
	}
	if c.Fields == nil {
		c.Fields = make(map[string]interface{})
	}

	c.ID = id
	return &c, nil
}
