package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

// ListAssignments fetches all assignments.
func (c *Client) ListAssignments(ctx context.Context) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := c.do(ctx, http.MethodGet, "/api/assignments", nil, &assignments)
	return assignments, err
}

// GetAssignment fetches one assignment by id.
func (c *Client) GetAssignment(ctx context.Context, id int) (model.Assignment, error) {
	var assignment model.Assignment
	err := c.do(ctx, http.MethodGet, "/api/assignments/"+strconv.Itoa(id), nil, &assignment)
	return assignment, err
}

// AssignmentsByStudent lists assignments scoped to a student.
func (c *Client) AssignmentsByStudent(ctx context.Context, studentID int) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := c.do(ctx, http.MethodGet, "/api/assignments/student/"+strconv.Itoa(studentID), nil, &assignments)
	return assignments, err
}

// AssignmentsByCourse lists assignments scoped to a course.
func (c *Client) AssignmentsByCourse(ctx context.Context, courseID int) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := c.do(ctx, http.MethodGet, "/api/assignments/course/"+strconv.Itoa(courseID), nil, &assignments)
	return assignments, err
}

// CreateSubmission records an assignment submission.
func (c *Client) CreateSubmission(ctx context.Context, sub model.Submission) error {
	return c.do(ctx, http.MethodPost, "/api/submissions", sub, nil)
}

// SubmissionsByAssignment lists submissions for an assignment.
func (c *Client) SubmissionsByAssignment(ctx context.Context, assignmentID int) ([]model.Submission, error) {
	var subs []model.Submission
	err := c.do(ctx, http.MethodGet, "/api/submissions/assignment/"+strconv.Itoa(assignmentID), nil, &subs)
	return subs, err
}

// SubmissionsByStudent lists a student's submissions.
func (c *Client) SubmissionsByStudent(ctx context.Context, studentID int) ([]model.Submission, error) {
	var subs []model.Submission
	err := c.do(ctx, http.MethodGet, "/api/submissions/student/"+strconv.Itoa(studentID), nil, &subs)
	return subs, err
}
