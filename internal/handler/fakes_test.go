package handler

// In-memory store fakes for handler tests. They mirror the store contracts
// closely enough to exercise handler behavior: the course fake filters on
// publication state and matches categories case-insensitively, the lesson
// fake returns lessons in whatever order they were seeded (so the sorting
// invariant is exercised), and both can be primed with an error to drive
// the failure paths.

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/eduflow/eduflow-api/internal/model"
	"github.com/eduflow/eduflow-api/internal/repository"
)

type fakeCourseStore struct {
	courses []model.Course
	err     error // returned by every method when set

	lastCategory string // category ListPublished was called with
	created      []model.Course
}

func (f *fakeCourseStore) ListPublished(_ context.Context, category string) ([]model.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastCategory = category
	out := []model.Course{}
	for _, c := range f.courses {
		if !c.IsPublished {
			continue
		}
		if category != "" && !strings.EqualFold(c.Category, category) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id uuid.UUID) (*model.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.courses {
		if f.courses[i].ID == id {
			return &f.courses[i], nil
		}
	}
	return nil, repository.ErrCourseNotFound
}

func (f *fakeCourseStore) Create(_ context.Context, c *model.Course) error {
	if f.err != nil {
		return f.err
	}
	c.ID = uuid.New()
	f.created = append(f.created, *c)
	return nil
}

type fakeLessonStore struct {
	lessons map[uuid.UUID][]model.Lesson       // by course id
	quizzes map[uuid.UUID][]model.QuizQuestion // by lesson id
	err     error

	updated *model.Lesson // last update applied
}

func (f *fakeLessonStore) ListByCourse(_ context.Context, courseID uuid.UUID) ([]model.Lesson, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lessons[courseID], nil
}

func (f *fakeLessonStore) QuizByCourse(_ context.Context, courseID uuid.UUID) (map[uuid.UUID][]model.QuizQuestion, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := map[uuid.UUID][]model.QuizQuestion{}
	for _, l := range f.lessons[courseID] {
		if qs, ok := f.quizzes[l.ID]; ok {
			out[l.ID] = qs
		}
	}
	return out, nil
}

func (f *fakeLessonStore) Update(_ context.Context, id uuid.UUID, title, description, videoURL string, durationSeconds int) (*model.Lesson, error) {
	if f.err != nil {
		return nil, f.err
	}
	for courseID := range f.lessons {
		for i := range f.lessons[courseID] {
			if f.lessons[courseID][i].ID == id {
				l := &f.lessons[courseID][i]
				l.Title = title
				l.Description = description
				l.VideoURL = videoURL
				l.VideoDurationSeconds = durationSeconds
				f.updated = l
				return l, nil
			}
		}
	}
	return nil, repository.ErrLessonNotFound
}

type fakeStatsStore struct {
	users, courses, enrollments int64
	err                         error
}

func (f *fakeStatsStore) CountUsers(context.Context) (int64, error) {
	return f.users, f.err
}

func (f *fakeStatsStore) CountCourses(context.Context) (int64, error) {
	return f.courses, f.err
}

func (f *fakeStatsStore) CountEnrollments(context.Context) (int64, error) {
	return f.enrollments, f.err
}
