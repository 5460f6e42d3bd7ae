// This file defines repository methods for courses. Reads run on the
// regular application pool where row-level security applies. Create runs on
// whichever pool the repo was constructed with; the admin wiring passes the
// elevated service pool so the insert bypasses RLS (trusted server-side
// operation, see the route registration for the caller-auth caveat).
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/eduflow/eduflow-api/internal/model"
)

// CourseRepo manages persistence for courses.
type CourseRepo struct {
	db *sqlx.DB
}

// NewCourseRepo constructs a CourseRepo with the given pool.
func NewCourseRepo(db *sqlx.DB) *CourseRepo {
	return &CourseRepo{db: db}
}

// courseCols is the column list shared by every course read.
const courseCols = `id, title, description, level, category, is_published, instructor_id, created_at, updated_at`

// ListPublished returns published courses ordered by creation time,
// newest first. When category is non-empty it is matched case-insensitively
// against the stored category string; callers normalize slugs
// ("web-dev" -> "Web Dev") before passing it in.
func (r *CourseRepo) ListPublished(ctx context.Context, category string) ([]model.Course, error) {
	courses := []model.Course{}
	if category != "" {
		const q = `SELECT ` + courseCols + ` FROM courses
		           WHERE is_published = TRUE AND category ILIKE $1
		           ORDER BY created_at DESC`
		if err := r.db.SelectContext(ctx, &courses, q, category); err != nil {
			return nil, err
		}
		return courses, nil
	}
	const q = `SELECT ` + courseCols + ` FROM courses
	           WHERE is_published = TRUE
	           ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &courses, q); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetByID retrieves a course by its ID regardless of publication state.
// It returns ErrCourseNotFound if there is no matching row.
func (r *CourseRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	const q = `SELECT ` + courseCols + ` FROM courses WHERE id = $1`
	var c model.Course
	if err := r.db.GetContext(ctx, &c, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a new course and populates the DB-generated fields (id,
// created_at, updated_at) on the given Course. Required-column violations
// (null title, unknown level) surface as driver errors for the handler to
// map onto the store-error response.
func (r *CourseRepo) Create(ctx context.Context, c *model.Course) error {
	const q = `INSERT INTO courses (title, description, level, category, is_published, instructor_id)
	           VALUES ($1, $2, $3, $4, $5, $6)
	           RETURNING id, created_at, updated_at`
	return r.db.QueryRowxContext(ctx, q,
		nullIfEmpty(c.Title),
		c.Description,
		nullIfEmpty(c.Level),
		c.Category,
		c.IsPublished,
		c.InstructorID,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// nullIfEmpty maps "" to SQL NULL so NOT NULL constraints fire for missing
// required fields instead of silently storing empty strings.
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
