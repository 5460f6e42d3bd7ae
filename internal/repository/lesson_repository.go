// This file defines repository methods for lessons and their quiz
// questions. Lesson updates run on the elevated service pool (the repo the
// admin wiring constructs); reads run on the application pool.
//
// NOTE: ListByCourse does not order by order_index. Course order is a
// consumer-side invariant: every caller re-sorts after fetch.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/eduflow/eduflow-api/internal/model"
)

// LessonRepo manages persistence for lessons and quiz questions.
type LessonRepo struct {
	db *sqlx.DB
}

// NewLessonRepo constructs a LessonRepo with the given pool.
func NewLessonRepo(db *sqlx.DB) *LessonRepo {
	return &LessonRepo{db: db}
}

const lessonCols = `id, course_id, title, description, video_url, video_duration_seconds, order_index, created_at`

// ListByCourse returns the lessons of a course in store order (no ordering
// guarantee; see package note).
func (r *LessonRepo) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Lesson, error) {
	const q = `SELECT ` + lessonCols + ` FROM lessons WHERE course_id = $1`
	lessons := []model.Lesson{}
	if err := r.db.SelectContext(ctx, &lessons, q, courseID); err != nil {
		return nil, err
	}
	return lessons, nil
}

// QuizByCourse returns every quiz question attached to any lesson of the
// course, grouped by lesson id. A single join query avoids one round-trip
// per lesson.
func (r *LessonRepo) QuizByCourse(ctx context.Context, courseID uuid.UUID) (map[uuid.UUID][]model.QuizQuestion, error) {
	const q = `SELECT qq.id, qq.lesson_id, qq.question, qq.options, qq.correct_index, qq.order_index
	           FROM quiz_questions qq
	           JOIN lessons l ON l.id = qq.lesson_id
	           WHERE l.course_id = $1
	           ORDER BY qq.order_index`
	questions := []model.QuizQuestion{}
	if err := r.db.SelectContext(ctx, &questions, q, courseID); err != nil {
		return nil, err
	}
	byLesson := make(map[uuid.UUID][]model.QuizQuestion, len(questions))
	for _, qq := range questions {
		byLesson[qq.LessonID] = append(byLesson[qq.LessonID], qq)
	}
	return byLesson, nil
}

// Update persists the editable lesson metadata (title, description, video
// URL and duration in seconds) for one lesson by id and returns the updated
// row. It returns ErrLessonNotFound when the id matches no lesson.
func (r *LessonRepo) Update(ctx context.Context, id uuid.UUID, title, description, videoURL string, durationSeconds int) (*model.Lesson, error) {
	const q = `UPDATE lessons
	           SET title = $2, description = $3, video_url = $4, video_duration_seconds = $5
	           WHERE id = $1
	           RETURNING ` + lessonCols
	var l model.Lesson
	err := r.db.QueryRowxContext(ctx, q, id, title, description, videoURL, durationSeconds).StructScan(&l)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}
	return &l, nil
}
