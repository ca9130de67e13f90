package sdk

import (
	"context"
	"net/http"
)

const approvalPath = "/cursos/aprobacion"

// ListPendingCourses returns the courses awaiting approval.
func (c *Client) ListPendingCourses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := c.do(ctx, http.MethodGet, approvalPath+"/pendientes", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// ApproveCourse moves a pending course to ACTIVO. Courses in any other
// state are refused by the backend with 400.
func (c *Client) ApproveCourse(ctx context.Context, id int64) (*MessageResponse, error) {
	return c.decideCourse(ctx, id, "aprobar")
}

// RejectCourse moves a pending course to RECHAZADO.
func (c *Client) RejectCourse(ctx context.Context, id int64) (*MessageResponse, error) {
	return c.decideCourse(ctx, id, "rechazar")
}

func (c *Client) decideCourse(ctx context.Context, id int64, action string) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.do(ctx, http.MethodPut, resourcePath(approvalPath, id, action), struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ApprovalStats returns the approval counters.
func (c *Client) ApprovalStats(ctx context.Context) (*ApprovalStats, error) {
	var stats ApprovalStats
	if err := c.do(ctx, http.MethodGet, approvalPath+"/estadisticas", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
