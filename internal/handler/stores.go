// Package handler exposes HTTP handlers for the public course API and the
// privileged admin surface. Handlers depend on small store interfaces
// rather than concrete repositories so tests can substitute in-memory
// fakes; the repository types satisfy them directly.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lib/pq"

	"github.com/eduflow/eduflow-api/internal/model"
)

// CourseStore is the course persistence surface handlers rely on.
type CourseStore interface {
	ListPublished(ctx context.Context, category string) ([]model.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
	Create(ctx context.Context, c *model.Course) error
}

// LessonStore is the lesson persistence surface handlers rely on.
type LessonStore interface {
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]model.Lesson, error)
	QuizByCourse(ctx context.Context, courseID uuid.UUID) (map[uuid.UUID][]model.QuizQuestion, error)
	Update(ctx context.Context, id uuid.UUID, title, description, videoURL string, durationSeconds int) (*model.Lesson, error)
}

// StatsStore provides the count-only aggregation queries for the admin
// dashboard.
type StatsStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountCourses(ctx context.Context) (int64, error)
	CountEnrollments(ctx context.Context) (int64, error)
}

// storeError maps a repository failure onto the two-tier error taxonomy:
// a structured store error (driver-reported) becomes a 400 carrying the
// store's message, anything else becomes an opaque 500 with no internal
// detail leaked.
func storeError(c echo.Context, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": pqErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
}
