package view

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MalithSamaradiwakara/frontend/internal/gateway"
	"github.com/MalithSamaradiwakara/frontend/internal/model"
	"github.com/MalithSamaradiwakara/frontend/internal/response"
	"github.com/MalithSamaradiwakara/frontend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TeacherHandler owns the teacher shell views. They reuse the same
// parameterized list view as the admin shell, with view-only actions.
type TeacherHandler struct {
	backend *gateway.Client
	log     zerolog.Logger
}

// NewTeacherHandler creates a TeacherHandler.
func NewTeacherHandler(backend *gateway.Client, log zerolog.Logger) *TeacherHandler {
	return &TeacherHandler{backend: backend, log: log}
}

// Dashboard renders the teacher landing page.
// GET /teacher/dashboard
func (h *TeacherHandler) Dashboard(c *gin.Context) {
	courses, err := h.backend.ListCourses(backendCtx(c))
	if err != nil {
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "teacher_dashboard.html", page(c, "Teacher Dashboard", gin.H{
		"Courses": courses,
	}))
}

// Courses renders the teacher's course list.
// GET /teacher/courses
func (h *TeacherHandler) Courses(c *gin.Context) {
	courses, err := h.backend.ListCourses(backendCtx(c))
	if err != nil {
		loadFailed(c, err)
		return
	}
	rows := make([]EntityRow, 0, len(courses))
	for _, course := range courses {
		rows = append(rows, EntityRow{
			Cells: []string{strconv.Itoa(course.ID), course.Title, course.Level, course.Duration},
			Actions: []EntityAction{
				{Label: "View", Target: fmt.Sprintf("/course/%d", course.ID)},
			},
		})
	}
	renderEntityList(c, EntityPage{
		Title:   "Courses",
		Columns: []string{"ID", "Title", "Level", "Duration"},
		Rows:    rows,
		Empty:   "No courses yet.",
	})
}

// Students renders the roster.
// GET /teacher/students
func (h *TeacherHandler) Students(c *gin.Context) {
	students, err := h.backend.ListStudents(backendCtx(c))
	if err != nil {
		loadFailed(c, err)
		return
	}
	rows := make([]EntityRow, 0, len(students))
	for _, s := range students {
		rows = append(rows, EntityRow{
			Cells: []string{strconv.Itoa(s.ID), s.Name, s.Email},
			Actions: []EntityAction{
				{Label: "View", Target: fmt.Sprintf("/students/view/%d", s.ID)},
			},
		})
	}
	renderEntityList(c, EntityPage{
		Title:   "Students",
		Columns: []string{"ID", "Name", "Email"},
		Rows:    rows,
		Empty:   "No students yet.",
	})
}

// Quizzes renders the quiz overview with authoring and review actions;
// per-quiz attempt detail lives on the attempts page.
// GET /teacher/quizzes
func (h *TeacherHandler) Quizzes(c *gin.Context) {
	quizzes, err := h.backend.ListQuizzes(backendCtx(c))
	if err != nil {
		loadFailed(c, err)
		return
	}
	rows := make([]EntityRow, 0, len(quizzes))
	for _, q := range quizzes {
		rows = append(rows, EntityRow{
			Cells: []string{strconv.Itoa(q.ID), q.Title, q.Description},
			Actions: []EntityAction{
				{Label: "Attempts", Target: fmt.Sprintf("/teacher/quizzes/%d/attempts", q.ID)},
				{Label: "Edit", Target: fmt.Sprintf("/teacher/quizzes/%d/edit", q.ID)},
				{Label: "Delete", Target: fmt.Sprintf("/teacher/quizzes/%d/delete", q.ID), Post: true, Confirm: true},
			},
		})
	}
	renderEntityList(c, EntityPage{
		Title:   "Quizzes",
		Columns: []string{"ID", "Title", "Description"},
		Rows:    rows,
		HeaderActions: []EntityAction{
			{Label: "New Quiz", Target: "/teacher/quizzes/new"},
		},
		Empty: "No quizzes yet.",
	})
}

// QuizNew renders the blank quiz authoring form.
// GET /teacher/quizzes/new
func (h *TeacherHandler) QuizNew(c *gin.Context) {
	c.HTML(http.StatusOK, "quiz_form.html", page(c, "New Quiz", gin.H{
		"Action": "/teacher/quizzes/new",
	}))
}

// QuizCreate creates a quiz from the authoring form.
// POST /teacher/quizzes/new
func (h *TeacherHandler) QuizCreate(c *gin.Context) {
	var form model.QuizForm
	if fields := validator.Bind(c, &form); fields != nil {
		c.HTML(http.StatusBadRequest, "quiz_form.html", page(c, "New Quiz", gin.H{
			"Action": "/teacher/quizzes/new",
			"Quiz":   form.Quiz(),
			"Fields": fields,
		}))
		return
	}
	if _, err := h.backend.CreateQuiz(backendCtx(c), form.Quiz()); err != nil {
		h.log.Warn().Err(err).Msg("quiz create failed")
		c.HTML(http.StatusBadGateway, "quiz_form.html", page(c, "New Quiz", gin.H{
			"Action": "/teacher/quizzes/new",
			"Quiz":   form.Quiz(),
			"Error":  gateway.Message(err),
		}))
		return
	}
	response.SetFlash(c, "Quiz created.")
	response.Redirect(c, "/teacher/quizzes")
}

// QuizEdit renders the quiz authoring form pre-filled.
// GET /teacher/quizzes/:id/edit
func (h *TeacherHandler) QuizEdit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid quiz ID.", false)
		return
	}
	quiz, err := h.backend.GetQuiz(backendCtx(c), id)
	if err != nil {
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "quiz_form.html", page(c, "Edit Quiz", gin.H{
		"Action": fmt.Sprintf("/teacher/quizzes/%d/edit", id),
		"Quiz":   quiz,
	}))
}

// QuizUpdate saves quiz edits.
// POST /teacher/quizzes/:id/edit
func (h *TeacherHandler) QuizUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid quiz ID.", false)
		return
	}
	action := fmt.Sprintf("/teacher/quizzes/%d/edit", id)
	var form model.QuizForm
	if fields := validator.Bind(c, &form); fields != nil {
		c.HTML(http.StatusBadRequest, "quiz_form.html", page(c, "Edit Quiz", gin.H{
			"Action": action,
			"Quiz":   form.Quiz(),
			"Fields": fields,
		}))
		return
	}
	if _, err := h.backend.UpdateQuiz(backendCtx(c), id, form.Quiz()); err != nil {
		h.log.Warn().Err(err).Int("quiz_id", id).Msg("quiz update failed")
		c.HTML(http.StatusBadGateway, "quiz_form.html", page(c, "Edit Quiz", gin.H{
			"Action": action,
			"Quiz":   form.Quiz(),
			"Error":  gateway.Message(err),
		}))
		return
	}
	response.SetFlash(c, "Quiz updated.")
	response.Redirect(c, "/teacher/quizzes")
}

// QuizDelete removes a quiz after the confirmation step.
// POST /teacher/quizzes/:id/delete
func (h *TeacherHandler) QuizDelete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid quiz ID.", false)
		return
	}
	if c.PostForm("confirm") != "yes" {
		c.HTML(http.StatusOK, "confirm_delete.html", page(c, "Confirm Deletion", gin.H{
			"Target": c.Request.URL.Path,
			"BackTo": "/teacher/quizzes",
		}))
		return
	}
	if err := h.backend.DeleteQuiz(backendCtx(c), id); err != nil {
		h.log.Warn().Err(err).Int("quiz_id", id).Msg("quiz delete failed")
		response.SetFlash(c, gateway.Message(err))
	} else {
		response.SetFlash(c, "Quiz deleted.")
	}
	response.Redirect(c, "/teacher/quizzes")
}

// QuizAttempts renders the recorded attempts for one quiz.
// GET /teacher/quizzes/:id/attempts
func (h *TeacherHandler) QuizAttempts(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid quiz ID.", false)
		return
	}
	ctx := backendCtx(c)
	quiz, err := h.backend.GetQuiz(ctx, id)
	if err != nil {
		loadFailed(c, err)
		return
	}
	attempts, err := h.backend.AttemptsByQuiz(ctx, id)
	if err != nil {
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "quiz_attempts.html", page(c, quiz.Title, gin.H{
		"Quiz":     quiz,
		"Attempts": attempts,
	}))
}

// Assignments renders the assignment overview with a per-assignment
// submissions review action.
// GET /teacher/assignments
func (h *TeacherHandler) Assignments(c *gin.Context) {
	assignments, err := h.backend.ListAssignments(backendCtx(c))
	if err != nil {
		loadFailed(c, err)
		return
	}
	rows := make([]EntityRow, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, EntityRow{
			Cells: []string{strconv.Itoa(a.ID), a.Title, a.DueDate},
			Actions: []EntityAction{
				{Label: "Submissions", Target: fmt.Sprintf("/teacher/assignments/%d/submissions", a.ID)},
			},
		})
	}
	renderEntityList(c, EntityPage{
		Title:   "Assignments",
		Columns: []string{"ID", "Title", "Due"},
		Rows:    rows,
		Empty:   "No assignments yet.",
	})
}

// AssignmentSubmissions renders the submissions handed in for one
// assignment.
// GET /teacher/assignments/:id/submissions
func (h *TeacherHandler) AssignmentSubmissions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid assignment ID.", false)
		return
	}
	ctx := backendCtx(c)
	assignment, err := h.backend.GetAssignment(ctx, id)
	if err != nil {
		loadFailed(c, err)
		return
	}
	submissions, err := h.backend.SubmissionsByAssignment(ctx, id)
	if err != nil {
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "assignment_submissions.html", page(c, assignment.Title, gin.H{
		"Assignment":  assignment,
		"Submissions": submissions,
	}))
}
