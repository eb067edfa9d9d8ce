package search

import (
	"strings"

	"learnify/internal/models"
)

// Filter returns the courses whose courseName contains query, ignoring case. Courses without a
// string courseName never match, not even the empty query. Order is preserved and the result is
// never nil.
func Filter(courses []*models.Course, query string) []*models.Course {
	q := strings.ToLower(query)

	filtered := make([]*models.Course, 0, len(courses))
	for _, course := range courses {
		if Matches(course, q) {
			filtered = append(filtered, course)
		}
	}
	return filtered
}

// Matches reports whether course's name contains the already-lowercased query.
func Matches(course *models.Course, lowerQuery string) bool {
	name, ok := course.Name()
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(name), lowerQuery)
}
