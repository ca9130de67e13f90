package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"
)

const enrollmentsPath = "/cursoregistros"

// Enroll registers a user in a course. The backend expects the full user and
// course records, so both are fetched first; either fetch failing aborts the
// enrollment. A 409 means the user is already enrolled.
func (c *Client) Enroll(ctx context.Context, userID, courseID int64) (*Enrollment, error) {
	var user, course json.RawMessage

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := c.do(gctx, http.MethodGet, resourcePath(usersPath, userID), nil, &user); err != nil {
			return fmt.Errorf("fetch user %d: %w", userID, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := c.do(gctx, http.MethodGet, resourcePath(coursesPath, courseID), nil, &course); err != nil {
			return fmt.Errorf("fetch course %d: %w", courseID, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	body := struct {
		Usuario json.RawMessage `json:"usuario"`
		Curso   json.RawMessage `json:"curso"`
	}{Usuario: user, Curso: course}

	var enrollment Enrollment
	if err := c.do(ctx, http.MethodPost, enrollmentsPath, body, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ListEnrollments returns every enrollment.
func (c *Client) ListEnrollments(ctx context.Context) ([]Enrollment, error) {
	var enrollments []Enrollment
	if err := c.do(ctx, http.MethodGet, enrollmentsPath, nil, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// GetEnrollment fetches a single enrollment.
func (c *Client) GetEnrollment(ctx context.Context, id int64) (*Enrollment, error) {
	var enrollment Enrollment
	if err := c.do(ctx, http.MethodGet, resourcePath(enrollmentsPath, id), nil, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// ListUserEnrollments returns the enrollments of one user as filtered by the backend.
func (c *Client) ListUserEnrollments(ctx context.Context, userID int64) ([]Enrollment, error) {
	var enrollments []Enrollment
	path := resourcePath(enrollmentsPath+"/usuario", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// IsEnrolled asks the backend whether userID is enrolled in courseID.
func (c *Client) IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error) {
	var enrolled bool
	path := resourcePath(enrollmentsPath+"/verificar", userID, fmt.Sprintf("%d", courseID))
	if err := c.do(ctx, http.MethodGet, path, nil, &enrolled); err != nil {
		return false, err
	}
	return enrolled, nil
}

// CancelEnrollment deletes an enrollment. A zero id is rejected without a request.
func (c *Client) CancelEnrollment(ctx context.Context, id int64) error {
	if id == 0 {
		return ErrEnrollmentIDMissing
	}
	return c.do(ctx, http.MethodDelete, resourcePath(enrollmentsPath, id), nil, nil)
}

// MyEnrollments keeps the enrollments belonging to userID. The result is never nil.
func MyEnrollments(enrollments []Enrollment, userID int64) []Enrollment {
	out := make([]Enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Usuario.ID == userID {
			out = append(out, e)
		}
	}
	return out
}
