package gateway

import (
	"context"
	"io"
	"net/http"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

// CreateEnrollment records an enrollment. The payment slip must already be
// uploaded; rec carries the stored path.
func (c *Client) CreateEnrollment(ctx context.Context, rec model.Enrollment) (model.Enrollment, error) {
	var created model.Enrollment
	err := c.do(ctx, http.MethodPost, "/api/enroll", rec, &created)
	return created, err
}

// UploadPaymentSlip uploads the payment slip and returns the stored path.
func (c *Client) UploadPaymentSlip(ctx context.Context, file io.Reader, filename, studentID, courseID string) (model.UploadResult, error) {
	var result model.UploadResult
	fields := map[string]string{
		"studentId": studentID,
		"courseId":  courseID,
	}
	err := c.upload(ctx, "/api/enroll/upload-payment", file, filename, fields, &result)
	return result, err
}

// EnrollmentsByStudent lists one student's enrollments.
func (c *Client) EnrollmentsByStudent(ctx context.Context, studentID string) ([]model.Enrollment, error) {
	var list []model.Enrollment
	err := c.do(ctx, http.MethodGet, "/api/enroll/student/"+studentID, nil, &list)
	return list, err
}

// PendingEnrollments lists enrollments awaiting review.
func (c *Client) PendingEnrollments(ctx context.Context) ([]model.Enrollment, error) {
	var list []model.Enrollment
	err := c.do(ctx, http.MethodGet, "/api/enroll/pending", nil, &list)
	return list, err
}

// AllEnrollments lists every enrollment.
func (c *Client) AllEnrollments(ctx context.Context) ([]model.Enrollment, error) {
	var list []model.Enrollment
	err := c.do(ctx, http.MethodGet, "/api/enroll/all", nil, &list)
	return list, err
}

// ApproveEnrollment approves a pending enrollment.
func (c *Client) ApproveEnrollment(ctx context.Context, studentID, courseID string) error {
	return c.do(ctx, http.MethodPut, "/api/enroll/approve/"+studentID+"/"+courseID, nil, nil)
}

// RejectEnrollment rejects a pending enrollment.
func (c *Client) RejectEnrollment(ctx context.Context, studentID, courseID string) error {
	return c.do(ctx, http.MethodPut, "/api/enroll/reject/"+studentID+"/"+courseID, nil, nil)
}
