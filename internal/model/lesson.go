package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Lesson represents a row in the `lessons` table. Lessons belong to a
// course and are presented to students sorted by OrderIndex ascending.
// That ordering is applied by consumers after fetch; the store does not
// guarantee it.
//
// Fields:
//
//	ID                   – primary key (uuid).
//	CourseID             – owning course.
//	Title                – lesson title.
//	Description          – optional lesson description.
//	VideoURL             – optional URL of the lesson video.
//	VideoDurationSeconds – video length in seconds. The admin edit surface
//	                       collects minutes and persists minutes*60, or 0
//	                       when the input is not numeric.
//	OrderIndex           – position of the lesson within its course.
//	CreatedAt            – creation timestamp.
type Lesson struct {
	ID                   uuid.UUID `db:"id" json:"id"`
	CourseID             uuid.UUID `db:"course_id" json:"course_id"`
	Title                string    `db:"title" json:"title"`
	Description          string    `db:"description" json:"description"`
	VideoURL             string    `db:"video_url" json:"video_url"`
	VideoDurationSeconds int       `db:"video_duration_seconds" json:"video_duration_seconds"`
	OrderIndex           int       `db:"order_index" json:"order_index"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`

	// QuizQuestions is populated by the course detail read; it is not a
	// column of the lessons table.
	QuizQuestions []QuizQuestion `db:"-" json:"quiz_questions"`
}

// QuizQuestion represents a row in the `quiz_questions` table. Questions
// belong to a lesson and are read-only in this service.
//
// Fields:
//
//	ID           – primary key (uuid).
//	LessonID     – owning lesson.
//	Question     – question text.
//	Options      – answer options, stored as a text array.
//	CorrectIndex – index into Options of the correct answer.
//	OrderIndex   – position of the question within the lesson quiz.
type QuizQuestion struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	LessonID     uuid.UUID      `db:"lesson_id" json:"lesson_id"`
	Question     string         `db:"question" json:"question"`
	Options      pq.StringArray `db:"options" json:"options"`
	CorrectIndex int            `db:"correct_index" json:"correct_index"`
	OrderIndex   int            `db:"order_index" json:"order_index"`
}
