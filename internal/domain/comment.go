package domain

import "time"

// Comment captures a threaded note on a complaint. Comments with IsInternal
// set are visible to authenticated staff only and must never appear on the
// public tracking view.
type Comment struct {
	ID          string
	ComplaintID string
	AuthorID    *string
	AuthorName  string
	Body        string
	BodyHTML    string
	IsInternal  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
