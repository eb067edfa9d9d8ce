package models

// View is everything a rendering client needs to draw the home screen for one refresh cycle.
type View struct {
	// Courses is the filtered course list, in the order the store returned it.
	Courses []*Course `json:"courses"`
	// Query is the current search query.
	Query string `json:"query"`
	// Refreshing is true while a fetch is in flight.
	Refreshing bool `json:"refreshing"`
	// Error is the pending fetch failure message, or "" if there is none.
	Error string `json:"error"`
	// Email is passed through to every rendered course card.
	Email string `json:"userEmail"`
	// Empty is true when there are no courses to display.
	Empty bool `json:"empty"`
	// EmptyMessage is the text shown in place of an empty list.
	EmptyMessage string `json:"emptyMessage,omitempty"`
}
