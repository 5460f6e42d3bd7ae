// Package queue defines message payloads exchanged over the message broker.
package queue

// CourseCreatedEvent is published after a course is created through the
// privileged admin endpoint. It is an audit side-channel, not a write
// path: it contains enough information for downstream consumers to log or
// trigger analytics without querying the primary database.
type CourseCreatedEvent struct {
	CourseID  string `json:"course_id"`
	Title     string `json:"title"`
	Level     string `json:"level"`
	CreatedBy string `json:"created_by,omitempty"` // gate identity, when present
	CreatedAt string `json:"created_at"`
}
