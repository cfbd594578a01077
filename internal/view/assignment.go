package view

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MalithSamaradiwakara/frontend/internal/gateway"
	"github.com/MalithSamaradiwakara/frontend/internal/model"
	"github.com/MalithSamaradiwakara/frontend/internal/response"
	"github.com/MalithSamaradiwakara/frontend/internal/validator"
	"github.com/MalithSamaradiwakara/frontend/internal/workflow"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AssignmentHandler owns the student assignment list and submission flow.
type AssignmentHandler struct {
	backend *gateway.Client
	log     zerolog.Logger
}

// NewAssignmentHandler creates an AssignmentHandler.
func NewAssignmentHandler(backend *gateway.Client, log zerolog.Logger) *AssignmentHandler {
	return &AssignmentHandler{backend: backend, log: log}
}

// List renders a student's assignments with their submissions, fetched
// jointly.
// GET /student/:id/assignments
func (h *AssignmentHandler) List(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid student ID.", false)
		return
	}
	ctx := backendCtx(c)

	assignments, err := h.backend.AssignmentsByStudent(ctx, studentID)
	if err != nil {
		loadFailed(c, err)
		return
	}
	submissions, err := h.backend.SubmissionsByStudent(ctx, studentID)
	if err != nil {
		loadFailed(c, err)
		return
	}

	submitted := make(map[int]model.Submission, len(submissions))
	for _, s := range submissions {
		submitted[s.AssignmentID] = s
	}

	c.HTML(http.StatusOK, "student_assignments.html", page(c, "My Assignments", gin.H{
		"StudentID":   studentID,
		"Assignments": assignments,
		"Submitted":   submitted,
	}))
}

// SubmitForm renders the submission form for one assignment.
// GET /student/:id/assignments/:assignmentId/submit
func (h *AssignmentHandler) SubmitForm(c *gin.Context) {
	studentID, assignmentID, ok := submissionParams(c)
	if !ok {
		return
	}

	wf := workflow.NewAssignmentSubmission(h.backend, assignmentID, studentID)
	if err := wf.Load(backendCtx(c)); err != nil {
		loadFailed(c, err)
		return
	}

	c.HTML(http.StatusOK, "assignment_submit.html", page(c, wf.Assignment.Title, gin.H{
		"StudentID":  studentID,
		"Assignment": wf.Assignment,
	}))
}

// Submit records the submission.
// POST /student/:id/assignments/:assignmentId/submit
func (h *AssignmentHandler) Submit(c *gin.Context) {
	studentID, assignmentID, ok := submissionParams(c)
	if !ok {
		return
	}
	ctx := backendCtx(c)

	wf := workflow.NewAssignmentSubmission(h.backend, assignmentID, studentID)
	if err := wf.Load(ctx); err != nil {
		loadFailed(c, err)
		return
	}

	var form model.SubmissionForm
	if fields := validator.Bind(c, &form); fields != nil {
		c.HTML(http.StatusBadRequest, "assignment_submit.html", page(c, wf.Assignment.Title, gin.H{
			"StudentID":  studentID,
			"Assignment": wf.Assignment,
			"Fields":     fields,
		}))
		return
	}
	wf.Content = form.Content

	fields, err := wf.Submit(ctx)
	if fields != nil {
		c.HTML(http.StatusBadRequest, "assignment_submit.html", page(c, wf.Assignment.Title, gin.H{
			"StudentID":  studentID,
			"Assignment": wf.Assignment,
			"Fields":     fields,
			"Content":    wf.Content,
		}))
		return
	}
	if err != nil {
		h.log.Warn().Err(err).Int("assignment_id", assignmentID).Msg("submission failed")
		c.HTML(http.StatusBadGateway, "assignment_submit.html", page(c, wf.Assignment.Title, gin.H{
			"StudentID":  studentID,
			"Assignment": wf.Assignment,
			"Error":      gateway.Message(err),
			"Content":    wf.Content,
		}))
		return
	}

	response.SetFlash(c, "Assignment submitted.")
	response.Redirect(c, fmt.Sprintf("/student/%d/assignments", studentID))
}

func submissionParams(c *gin.Context) (studentID, assignmentID int, ok bool) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid student ID.", false)
		return 0, 0, false
	}
	assignmentID, err = strconv.Atoi(c.Param("assignmentId"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid assignment ID.", false)
		return 0, 0, false
	}
	return studentID, assignmentID, true
}
