// This file defines count-only queries backing the admin dashboard. No row
// data is transferred; each method issues a single COUNT(*).
package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// StatsRepo aggregates platform-wide counts for the admin dashboard.
type StatsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo constructs a StatsRepo with the given pool.
func NewStatsRepo(db *sqlx.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// CountUsers returns the total number of user records.
func (r *StatsRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// CountCourses returns the total number of courses, published or not.
func (r *StatsRepo) CountCourses(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM courses`)
}

// CountEnrollments returns the total number of enrollment associations.
func (r *StatsRepo) CountEnrollments(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM enrollments`)
}

func (r *StatsRepo) count(ctx context.Context, q string) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, q); err != nil {
		return 0, err
	}
	return n, nil
}
