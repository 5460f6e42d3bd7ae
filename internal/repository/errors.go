// Package repository contains data access logic for the course catalog.
// Repositories hold an sqlx pool and expose context-aware methods; row
// absence is reported through per-entity sentinel errors so handlers can
// map it to 404 without inspecting driver errors.
package repository

import "errors"

// ErrCourseNotFound indicates that a course was not located in the DB.
var ErrCourseNotFound = errors.New("course not found")

// ErrLessonNotFound indicates that a lesson was not located in the DB.
var ErrLessonNotFound = errors.New("lesson not found")
