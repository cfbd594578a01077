package view

import (
	"net/http"
	"strconv"

	"github.com/MalithSamaradiwakara/frontend/internal/gateway"
	"github.com/MalithSamaradiwakara/frontend/internal/middleware"
	"github.com/MalithSamaradiwakara/frontend/internal/model"
	"github.com/MalithSamaradiwakara/frontend/internal/response"
	"github.com/MalithSamaradiwakara/frontend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ProfileHandler owns profile pages and student self-management.
type ProfileHandler struct {
	backend *gateway.Client
	log     zerolog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(backend *gateway.Client, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{backend: backend, log: log}
}

// Dashboard renders the student landing page: profile plus enrollments,
// fetched jointly. The studentId may be absent when the post-login lookup
// failed; the page then fails closed with a prompt to log in again.
// GET /student/dashboard
func (h *ProfileHandler) Dashboard(c *gin.Context) {
	snap := middleware.GetSession(c)
	if snap.StudentID == "" {
		response.ErrorPage(c, http.StatusConflict, "Your student record could not be resolved. Please log out and log in again.", false)
		return
	}
	studentID, err := strconv.Atoi(snap.StudentID)
	if err != nil {
		response.ErrorPage(c, http.StatusConflict, "Your student record is invalid. Please log out and log in again.", false)
		return
	}

	ctx := backendCtx(c)
	var (
		student     model.Student
		enrollments []model.Enrollment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		student, err = h.backend.GetStudent(gctx, studentID)
		return err
	})
	g.Go(func() error {
		var err error
		enrollments, err = h.backend.EnrollmentsByStudent(gctx, snap.StudentID)
		return err
	})
	if err := g.Wait(); err != nil {
		loadFailed(c, err)
		return
	}

	c.HTML(http.StatusOK, "student_dashboard.html", page(c, "Dashboard", gin.H{
		"Student":     student,
		"Enrollments": enrollments,
	}))
}

// MyProfile renders the profile of the actor identified in the path.
// GET /myprofile/:id
func (h *ProfileHandler) MyProfile(c *gin.Context) {
	h.renderStudent(c, "my_profile.html")
}

// StudentView renders a student's public profile.
// GET /students/view/:id
func (h *ProfileHandler) StudentView(c *gin.Context) {
	h.renderStudent(c, "student_view.html")
}

func (h *ProfileHandler) renderStudent(c *gin.Context, template string) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid student ID.", false)
		return
	}
	student, err := h.backend.GetStudent(backendCtx(c), id)
	if err != nil {
		if gateway.IsNotFound(err) {
			response.ErrorPage(c, http.StatusNotFound, "Student not found.", false)
			return
		}
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, template, page(c, student.Name, gin.H{
		"Student": student,
	}))
}

// EditForm renders the student edit form pre-filled.
// GET /students/edit/:id
func (h *ProfileHandler) EditForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid student ID.", false)
		return
	}
	student, err := h.backend.GetStudent(backendCtx(c), id)
	if err != nil {
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "student_edit.html", page(c, "Edit Profile", gin.H{
		"Student": student,
	}))
}

// EditSubmit updates the student profile.
// POST /students/edit/:id
func (h *ProfileHandler) EditSubmit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid student ID.", false)
		return
	}
	var form model.StudentForm
	if fields := validator.Bind(c, &form); fields != nil {
		c.HTML(http.StatusBadRequest, "student_edit.html", page(c, "Edit Profile", gin.H{
			"Student": model.Student{ID: id, Name: form.Name, Email: form.Email, Phone: form.Phone, Address: form.Address},
			"Fields":  fields,
		}))
		return
	}
	if _, err := h.backend.UpdateStudent(backendCtx(c), id, form); err != nil {
		c.HTML(http.StatusBadGateway, "student_edit.html", page(c, "Edit Profile", gin.H{
			"Student": model.Student{ID: id, Name: form.Name, Email: form.Email, Phone: form.Phone, Address: form.Address},
			"Error":   gateway.Message(err),
		}))
		return
	}
	response.SetFlash(c, "Profile updated.")
	response.Redirect(c, "/students/view/"+c.Param("id"))
}

// AddForm renders the student registration form.
// GET /students/addstudent
func (h *ProfileHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "student_add.html", page(c, "Student Registration", nil))
}

// AddSubmit registers a new student.
// POST /students/addstudent
func (h *ProfileHandler) AddSubmit(c *gin.Context) {
	var form model.StudentForm
	if fields := validator.Bind(c, &form); fields != nil {
		c.HTML(http.StatusBadRequest, "student_add.html", page(c, "Student Registration", gin.H{
			"Fields": fields,
			"Form":   form,
		}))
		return
	}
	if _, err := h.backend.RegisterStudent(backendCtx(c), form); err != nil {
		c.HTML(http.StatusBadGateway, "student_add.html", page(c, "Student Registration", gin.H{
			"Error": gateway.Message(err),
			"Form":  form,
		}))
		return
	}
	response.SetFlash(c, "Registration complete. Please log in.")
	response.Redirect(c, "/login")
}
