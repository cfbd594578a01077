package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

// SubmissionBackend is the gateway subset the assignment-submission
// workflow needs.
type SubmissionBackend interface {
	GetAssignment(ctx context.Context, id int) (model.Assignment, error)
	CreateSubmission(ctx context.Context, sub model.Submission) error
}

// AssignmentSubmission drives the assignment answer flow: load the
// assignment, collect the content, submit.
type AssignmentSubmission struct {
	machine
	backend      SubmissionBackend
	assignmentID int
	studentID    int

	Assignment model.Assignment
	Content    string
}

// NewAssignmentSubmission starts a submission workflow.
func NewAssignmentSubmission(backend SubmissionBackend, assignmentID, studentID int) *AssignmentSubmission {
	return &AssignmentSubmission{
		machine:      newMachine(),
		backend:      backend,
		assignmentID: assignmentID,
		studentID:    studentID,
	}
}

// Load fetches the assignment; failure is terminal for the instance.
func (w *AssignmentSubmission) Load(ctx context.Context) error {
	assignment, err := w.backend.GetAssignment(ctx, w.assignmentID)
	if err != nil {
		w.fail(fmt.Errorf("load assignment %d: %w", w.assignmentID, err))
		return w.Err()
	}
	w.Assignment = assignment
	w.ready()
	return nil
}

// Validate requires non-empty submission content.
func (w *AssignmentSubmission) Validate() map[string]string {
	if strings.TrimSpace(w.Content) == "" {
		return map[string]string{"content": "Submission content is required."}
	}
	return nil
}

// Submit records the submission. Validation failures stay local; backend
// failures return the machine to Ready with the content preserved.
func (w *AssignmentSubmission) Submit(ctx context.Context) (map[string]string, error) {
	if fields := w.Validate(); fields != nil {
		return fields, nil
	}
	if !w.beginSubmit() {
		return nil, fmt.Errorf("submission already in progress")
	}

	sub := model.Submission{
		AssignmentID:   w.assignmentID,
		StudentID:      w.studentID,
		Content:        w.Content,
		SubmissionDate: time.Now().UTC().Format(time.RFC3339),
	}
	err := w.backend.CreateSubmission(ctx, sub)
	w.finishSubmit(err)
	if err != nil {
		return nil, err
	}
	return nil, nil
}
