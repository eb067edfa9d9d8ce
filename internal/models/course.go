package models

import "encoding/json"

var (
	FirestoreCoursesCollection = "courses"
)

const (
	// CourseNameField is the document field the search filter matches against.
	CourseNameField = "courseName"
	// NoCoursesMessage is shown when the displayed list is empty.
	NoCoursesMessage = "No Available Courses"
)

// Course is a read-only local copy of a document in the courses collection. The store owns the
// schema, so everything except the document ID is kept as an open-ended field set.
type Course struct {
	ID     string                 `json:"id" mapstructure:"-"`
	Fields map[string]interface{} `json:"-" mapstructure:",remain"`
}

// Name returns the course's courseName field, and whether it is present and a string.
func (c *Course) Name() (string, bool) {
	if c == nil || c.Fields == nil {
		return "", false
	}
	name, ok := c.Fields[CourseNameField].(string)
	return name, ok
}

// MarshalJSON flattens the document ID and its fields into a single object. The ID from the
// document reference takes precedence over a payload field named "id".
func (c *Course) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Fields)+1)
	for k, v := range c.Fields {
		out[k] = v
	}
	out["id"] = c.ID
	return json.Marshal(out)
}

// GetCoursesRequest is the parameter struct for a stateless course search.
type GetCoursesRequest struct {
	Query string  `json:"query"`
	Token *string `json:"-"`
}

// SearchRequest is the body of a query change on the home screen.
type SearchRequest struct {
	Query string `json:"query"`
}
