package view

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MalithSamaradiwakara/frontend/internal/gateway"
	"github.com/MalithSamaradiwakara/frontend/internal/model"
	"github.com/MalithSamaradiwakara/frontend/internal/response"
	"github.com/MalithSamaradiwakara/frontend/internal/workflow"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// QuizHandler owns the student quiz list and attempt flow.
type QuizHandler struct {
	backend *gateway.Client
	log     zerolog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(backend *gateway.Client, log zerolog.Logger) *QuizHandler {
	return &QuizHandler{backend: backend, log: log}
}

// List renders the quizzes available to a student alongside any recorded
// attempts, fetched jointly.
// GET /student/:id/quizzes
func (h *QuizHandler) List(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid student ID.", false)
		return
	}
	ctx := backendCtx(c)

	quizzes, err := h.backend.ListQuizzes(ctx)
	if err != nil {
		loadFailed(c, err)
		return
	}
	attempts, err := h.backend.AttemptsByStudent(ctx, studentID)
	if err != nil {
		loadFailed(c, err)
		return
	}

	attempted := make(map[int]model.Attempt, len(attempts))
	for _, a := range attempts {
		attempted[a.Quiz.QuizID] = a
	}

	c.HTML(http.StatusOK, "student_quizzes.html", page(c, "My Quizzes", gin.H{
		"StudentID": studentID,
		"Quizzes":   quizzes,
		"Attempted": attempted,
	}))
}

// AttemptForm renders the quiz paper.
// GET /student/:id/quizzes/:quizId/attempt
func (h *QuizHandler) AttemptForm(c *gin.Context) {
	studentID, quizID, ok := attemptParams(c)
	if !ok {
		return
	}

	wf := workflow.NewQuizAttempt(h.backend, quizID, studentID)
	if err := wf.Load(backendCtx(c)); err != nil {
		loadFailed(c, err)
		return
	}

	c.HTML(http.StatusOK, "quiz_attempt.html", page(c, wf.Quiz.Title, gin.H{
		"StudentID": studentID,
		"Quiz":      wf.Quiz,
		"Questions": splitQuestions(wf.Questions),
	}))
}

// AttemptSubmit collects the answers, scores them provisionally, and
// records the attempt. Unanswered questions re-render the form locally.
// POST /student/:id/quizzes/:quizId/attempt
func (h *QuizHandler) AttemptSubmit(c *gin.Context) {
	studentID, quizID, ok := attemptParams(c)
	if !ok {
		return
	}
	ctx := backendCtx(c)

	wf := workflow.NewQuizAttempt(h.backend, quizID, studentID)
	if err := wf.Load(ctx); err != nil {
		loadFailed(c, err)
		return
	}

	for _, q := range wf.Questions {
		raw := c.PostForm(fmt.Sprintf("question-%d", q.ID))
		if raw == "" {
			continue
		}
		if opt, err := strconv.Atoi(raw); err == nil {
			wf.Answer(q.ID, opt)
		}
	}

	fields, err := wf.Submit(ctx)
	if fields != nil {
		c.HTML(http.StatusBadRequest, "quiz_attempt.html", page(c, wf.Quiz.Title, gin.H{
			"StudentID": studentID,
			"Quiz":      wf.Quiz,
			"Questions": splitQuestions(wf.Questions),
			"Answers":   wf.Answers,
			"Error":     fields["answers"],
		}))
		return
	}
	if err != nil {
		h.log.Warn().Err(err).Int("quiz_id", quizID).Msg("quiz attempt submission failed")
		c.HTML(http.StatusBadGateway, "quiz_attempt.html", page(c, wf.Quiz.Title, gin.H{
			"StudentID": studentID,
			"Quiz":      wf.Quiz,
			"Questions": splitQuestions(wf.Questions),
			"Answers":   wf.Answers,
			"Error":     "Failed to submit quiz. Please try again.",
		}))
		return
	}

	response.SetFlash(c, fmt.Sprintf("Quiz submitted. Provisional score: %.1f%%", wf.ProvisionalScore()))
	response.Redirect(c, fmt.Sprintf("/student/%d/quizzes", studentID))
}

func attemptParams(c *gin.Context) (studentID, quizID int, ok bool) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid student ID.", false)
		return 0, 0, false
	}
	quizID, err = strconv.Atoi(c.Param("quizId"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid quiz ID.", false)
		return 0, 0, false
	}
	return studentID, quizID, true
}

// questionView is a question with its options split out of the backend's
// semicolon-joined representation for rendering.
type questionView struct {
	model.Question
	Options []string
}

func splitQuestions(questions []model.Question) []questionView {
	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, questionView{Question: q, Options: strings.Split(q.Answers, ";")})
	}
	return views
}
