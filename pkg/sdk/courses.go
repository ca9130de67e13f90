package sdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const coursesPath = "/cursos"

// availableFilter selects the courses a student may enroll in.
var availableFilter = BuildBexprFilter(FilterFields{"estado": string(CourseActive)})

// ListCourses returns every course.
func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := c.do(ctx, http.MethodGet, coursesPath, nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse fetches a single course.
func (c *Client) GetCourse(ctx context.Context, id int64) (*Course, error) {
	var course Course
	if err := c.do(ctx, http.MethodGet, resourcePath(coursesPath, id), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CreateCourse submits a new course. An unset status is sent as PENDIENTE.
func (c *Client) CreateCourse(ctx context.Context, course Course) (*Course, error) {
	if strings.TrimSpace(course.Titulo) == "" {
		return nil, fmt.Errorf("course title is required")
	}
	if course.Estado == "" {
		course.Estado = CoursePending
	}
	course.ID = 0

	var created Course
	if err := c.do(ctx, http.MethodPost, coursesPath, course, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCourse replaces the course with the given id.
func (c *Client) UpdateCourse(ctx context.Context, id int64, course Course) (*Course, error) {
	course.ID = id

	var updated Course
	if err := c.do(ctx, http.MethodPut, resourcePath(coursesPath, id), course, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCourse removes a course. The backend refuses (500) while students are enrolled.
func (c *Client) DeleteCourse(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, resourcePath(coursesPath, id), nil, nil)
}

// AvailableCourses fetches the course list and keeps only ACTIVO courses.
func (c *Client) AvailableCourses(ctx context.Context) ([]Course, error) {
	courses, err := c.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	return FilterCourses(courses, availableFilter)
}

// FilterCourses keeps the courses matching a bexpr expression over the fields
// id, titulo, descripcion and estado. An empty expression keeps everything.
// The result is never nil.
func FilterCourses(courses []Course, expr string) ([]Course, error) {
	if strings.TrimSpace(expr) == "" {
		out := make([]Course, len(courses))
		copy(out, courses)
		return out, nil
	}

	m, err := compileFilter(expr)
	if err != nil {
		return nil, err
	}

	out := make([]Course, 0, len(courses))
	for _, course := range courses {
		if m.match(courseFields(course)) {
			out = append(out, course)
		}
	}
	return out, nil
}

func courseFields(course Course) map[string]any {
	return map[string]any{
		"id":          course.ID,
		"titulo":      course.Titulo,
		"descripcion": course.Descripcion,
		"estado":      string(course.Estado),
	}
}
