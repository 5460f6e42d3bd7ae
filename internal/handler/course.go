// This file defines the public course query handlers: the published-course
// list with category-slug filtering and the course detail read with nested
// lessons and quiz questions.
package handler

import (
	"errors"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/eduflow/eduflow-api/internal/model"
	"github.com/eduflow/eduflow-api/internal/repository"
	"github.com/eduflow/eduflow-api/internal/utils"
)

// CourseHandler aggregates the stores needed for unauthenticated course
// browsing.
type CourseHandler struct {
	Courses CourseStore
	Lessons LessonStore
}

// NewCourseHandler constructs a CourseHandler.
func NewCourseHandler(courses CourseStore, lessons LessonStore) *CourseHandler {
	return &CourseHandler{Courses: courses, Lessons: lessons}
}

// List handles GET /api/courses. It returns published courses only, newest
// first, as a bare JSON array (empty when none match). The optional
// ?category=<slug> filter is normalized from its hyphenated form
// ("web-dev" -> "Web Dev") before a case-insensitive match against the
// stored category string.
func (h *CourseHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	category := c.QueryParam("category")
	if category != "" {
		category = utils.NormalizeCategorySlug(category)
	}

	courses, err := h.Courses.ListPublished(ctx, category)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, courses)
}

// Detail handles GET /api/courses/:id. It fetches the course together with
// its lessons and each lesson's quiz questions. Lessons are re-sorted by
// order_index ascending after retrieval: the store does not guarantee
// course order, so the invariant is applied here, on every read.
func (h *CourseHandler) Detail(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// A malformed id is a client-correctable store-level error, same
		// class as a failed query.
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid course id"})
	}

	course, err := h.Courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCourseNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Course not found"})
		}
		return storeError(c, err)
	}

	lessons, err := h.Lessons.ListByCourse(ctx, id)
	if err != nil {
		return storeError(c, err)
	}
	quizzes, err := h.Lessons.QuizByCourse(ctx, id)
	if err != nil {
		return storeError(c, err)
	}
	for i := range lessons {
		if qs, ok := quizzes[lessons[i].ID]; ok {
			lessons[i].QuizQuestions = qs
		} else {
			lessons[i].QuizQuestions = []model.QuizQuestion{}
		}
	}
	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].OrderIndex < lessons[j].OrderIndex
	})

	return c.JSON(http.StatusOK, model.CourseDetail{Course: *course, Lessons: lessons})
}
