package model

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a row in the `courses` table. Courses are authored by
// an instructor, carry a difficulty level and a free-form category string
// (title case with spaces, e.g. "Web Dev"), and are only visible through
// the public API once published.
//
// Fields:
//
//	ID           – primary key (uuid).
//	Title        – course title.
//	Description  – long-form description.
//	Level        – difficulty level (e.g. "beginner", "advanced").
//	Category     – category name used by the list filter.
//	IsPublished  – whether the course is visible to the public API.
//	InstructorID – author reference into the users table.
//	CreatedAt    – creation timestamp; list responses order by this, descending.
//	UpdatedAt    – last update timestamp.
type Course struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Level        string    `db:"level" json:"level"`
	Category     string    `db:"category" json:"category"`
	IsPublished  bool      `db:"is_published" json:"is_published"`
	InstructorID uuid.UUID `db:"instructor_id" json:"instructor_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// CourseDetail is a course together with its lessons, as returned by the
// detail endpoint. Lessons carry their quiz questions nested. The lesson
// ordering invariant (ascending order_index) is enforced by the handler
// after retrieval, not by the store.
type CourseDetail struct {
	Course
	Lessons []Lesson `json:"lessons"`
}
