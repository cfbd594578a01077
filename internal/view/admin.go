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
	"golang.org/x/sync/errgroup"
)

// AdminHandler owns the admin shell views.
type AdminHandler struct {
	backend *gateway.Client
	log     zerolog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(backend *gateway.Client, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{backend: backend, log: log}
}

// Home renders the admin overview: entity counts fetched jointly.
// GET /admin
func (h *AdminHandler) Home(c *gin.Context) {
	ctx := backendCtx(c)
	var (
		courses  []model.Course
		students []model.Student
		teachers []model.Teacher
		pending  []model.Enrollment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = h.backend.ListCourses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		students, err = h.backend.ListStudents(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		teachers, err = h.backend.ListTeachers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = h.backend.PendingEnrollments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		loadFailed(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin_home.html", page(c, "Admin", gin.H{
		"CourseCount":  len(courses),
		"StudentCount": len(students),
		"TeacherCount": len(teachers),
		"PendingCount": len(pending),
	}))
}

// Courses renders the course management list.
// GET /admin/courses
func (h *AdminHandler) Courses(c *gin.Context) {
	courses, err := h.backend.ListCourses(backendCtx(c))
	if err != nil {
		loadFailed(c, err)
		return
	}
	rows := make([]EntityRow, 0, len(courses))
	for _, course := range courses {
		rows = append(rows, EntityRow{
			Cells: []string{strconv.Itoa(course.ID), course.Title, course.Level, fmt.Sprintf("%.2f", course.Price)},
			Actions: []EntityAction{
				{Label: "View", Target: fmt.Sprintf("/course/%d", course.ID)},
				{Label: "Edit", Target: fmt.Sprintf("/admin/courses/%d/edit", course.ID)},
				{Label: "Delete", Target: fmt.Sprintf("/admin/courses/%d/delete", course.ID), Post: true, Confirm: true},
			},
		})
	}
	renderEntityList(c, EntityPage{
		Title:   "Course Management",
		Columns: []string{"ID", "Title", "Level", "Price"},
		Rows:    rows,
		HeaderActions: []EntityAction{
			{Label: "New Course", Target: "/admin/courses/new"},
		},
		Empty: "No courses yet.",
	})
}

// Students renders the student management list.
// GET /admin/students
func (h *AdminHandler) Students(c *gin.Context) {
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
				{Label: "Delete", Target: fmt.Sprintf("/admin/students/%d/delete", s.ID), Post: true, Confirm: true},
			},
		})
	}
	renderEntityList(c, EntityPage{
		Title:   "Student Management",
		Columns: []string{"ID", "Name", "Email"},
		Rows:    rows,
		Empty:   "No students yet.",
	})
}

// Tutors renders the teacher management list.
// GET /admin/tutors
func (h *AdminHandler) Tutors(c *gin.Context) {
	teachers, err := h.backend.ListTeachers(backendCtx(c))
	if err != nil {
		loadFailed(c, err)
		return
	}
	rows := make([]EntityRow, 0, len(teachers))
	for _, t := range teachers {
		rows = append(rows, EntityRow{
			Cells: []string{strconv.Itoa(t.ID), t.Name, t.Email, t.Subject},
			Actions: []EntityAction{
				{Label: "View", Target: fmt.Sprintf("/tutors/viewtutors/%d", t.ID)},
				{Label: "Edit", Target: fmt.Sprintf("/admin/tutors/%d/edit", t.ID)},
				{Label: "Delete", Target: fmt.Sprintf("/admin/tutors/%d/delete", t.ID), Post: true, Confirm: true},
			},
		})
	}
	renderEntityList(c, EntityPage{
		Title:   "Teacher Management",
		Columns: []string{"ID", "Name", "Email", "Subject"},
		Rows:    rows,
		HeaderActions: []EntityAction{
			{Label: "Add Teacher", Target: "/admin/tutors/new"},
		},
		Empty: "No teachers yet.",
	})
}

// Enrollments renders the enrollment review list: pending first, then the
// rest, fetched jointly.
// GET /admin/enrollments
func (h *AdminHandler) Enrollments(c *gin.Context) {
	ctx := backendCtx(c)
	var pending, all []model.Enrollment
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pending, err = h.backend.PendingEnrollments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		all, err = h.backend.AllEnrollments(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		loadFailed(c, err)
		return
	}

	rows := make([]EntityRow, 0, len(pending))
	for _, e := range pending {
		base := fmt.Sprintf("/admin/enrollments/%s/%s", e.StudentID, e.CourseID)
		rows = append(rows, EntityRow{
			Cells: []string{e.StudentID, e.CourseID, e.PaymentRef, e.Date},
			Actions: []EntityAction{
				{Label: "Approve", Target: base + "/approve", Post: true},
				{Label: "Reject", Target: base + "/reject", Post: true, Confirm: true},
			},
		})
	}

	c.HTML(http.StatusOK, "admin_enrollments.html", page(c, "Enrollment Management", gin.H{
		"Pending": EntityPage{
			Title:   "Pending Enrollments",
			Columns: []string{"Student", "Course", "Payment Ref", "Date"},
			Rows:    rows,
			Empty:   "No pending enrollments.",
		},
		"All": all,
	}))
}

// EnrollmentAction approves or rejects a pending enrollment.
// POST /admin/enrollments/:studentId/:courseId/:action
func (h *AdminHandler) EnrollmentAction(c *gin.Context) {
	studentID := c.Param("studentId")
	courseID := c.Param("courseId")
	ctx := backendCtx(c)

	var err error
	switch c.Param("action") {
	case "approve":
		err = h.backend.ApproveEnrollment(ctx, studentID, courseID)
	case "reject":
		err = h.backend.RejectEnrollment(ctx, studentID, courseID)
	default:
		response.ErrorPage(c, http.StatusBadRequest, "Unknown enrollment action.", false)
		return
	}
	if err != nil {
		h.log.Warn().Err(err).Str("student_id", studentID).Str("course_id", courseID).Msg("enrollment decision failed")
		response.SetFlash(c, gateway.Message(err))
	} else {
		response.SetFlash(c, "Enrollment updated.")
	}
	response.Redirect(c, "/admin/enrollments")
}

// DeleteCourse removes a course after the confirmation step.
// POST /admin/courses/:id/delete
func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	h.deleteEntity(c, "/admin/courses", func(id int) error {
		return h.backend.DeleteCourse(backendCtx(c), id)
	})
}

// DeleteStudent removes a student after the confirmation step.
// POST /admin/students/:id/delete
func (h *AdminHandler) DeleteStudent(c *gin.Context) {
	h.deleteEntity(c, "/admin/students", func(id int) error {
		return h.backend.DeleteStudent(backendCtx(c), id)
	})
}

// DeleteTutor removes a teacher after the confirmation step.
// POST /admin/tutors/:id/delete
func (h *AdminHandler) DeleteTutor(c *gin.Context) {
	h.deleteEntity(c, "/admin/tutors", func(id int) error {
		return h.backend.DeleteTeacher(backendCtx(c), id)
	})
}

// deleteEntity runs a confirmed destructive action: without the confirm
// field the request renders the confirmation page instead of deleting.
func (h *AdminHandler) deleteEntity(c *gin.Context, backTo string, del func(id int) error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid ID.", false)
		return
	}
	if c.PostForm("confirm") != "yes" {
		c.HTML(http.StatusOK, "confirm_delete.html", page(c, "Confirm Deletion", gin.H{
			"Target": c.Request.URL.Path,
			"BackTo": backTo,
		}))
		return
	}
	if err := del(id); err != nil {
		h.log.Warn().Err(err).Int("id", id).Msg("delete failed")
		response.SetFlash(c, gateway.Message(err))
	} else {
		response.SetFlash(c, "Deleted.")
	}
	response.Redirect(c, backTo)
}

// CourseNew renders the blank course form.
// GET /admin/courses/new
func (h *AdminHandler) CourseNew(c *gin.Context) {
	c.HTML(http.StatusOK, "course_form.html", page(c, "New Course", gin.H{
		"Action": "/admin/courses/new",
	}))
}

// CourseCreate creates a course from the form.
// POST /admin/courses/new
func (h *AdminHandler) CourseCreate(c *gin.Context) {
	var form model.CourseForm
	if fields := validator.Bind(c, &form); fields != nil {
		c.HTML(http.StatusBadRequest, "course_form.html", page(c, "New Course", gin.H{
			"Action": "/admin/courses/new",
			"Course": form.Course(),
			"Fields": fields,
		}))
		return
	}
	if _, err := h.backend.CreateCourse(backendCtx(c), form); err != nil {
		h.log.Warn().Err(err).Msg("course create failed")
		c.HTML(http.StatusBadGateway, "course_form.html", page(c, "New Course", gin.H{
			"Action": "/admin/courses/new",
			"Course": form.Course(),
			"Error":  gateway.Message(err),
		}))
		return
	}
	response.SetFlash(c, "Course created.")
	response.Redirect(c, "/admin/courses")
}

// CourseEdit renders the course form pre-filled.
// GET /admin/courses/:id/edit
func (h *AdminHandler) CourseEdit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid course ID.", false)
		return
	}
	course, err := h.backend.GetCourse(backendCtx(c), id)
	if err != nil {
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "course_form.html", page(c, "Edit Course", gin.H{
		"Action": fmt.Sprintf("/admin/courses/%d/edit", id),
		"Course": course,
	}))
}

// CourseUpdate saves course edits.
// POST /admin/courses/:id/edit
func (h *AdminHandler) CourseUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid course ID.", false)
		return
	}
	action := fmt.Sprintf("/admin/courses/%d/edit", id)
	var form model.CourseForm
	if fields := validator.Bind(c, &form); fields != nil {
		c.HTML(http.StatusBadRequest, "course_form.html", page(c, "Edit Course", gin.H{
			"Action": action,
			"Course": form.Course(),
			"Fields": fields,
		}))
		return
	}
	if _, err := h.backend.UpdateCourse(backendCtx(c), id, form); err != nil {
		h.log.Warn().Err(err).Int("course_id", id).Msg("course update failed")
		c.HTML(http.StatusBadGateway, "course_form.html", page(c, "Edit Course", gin.H{
			"Action": action,
			"Course": form.Course(),
			"Error":  gateway.Message(err),
		}))
		return
	}
	response.SetFlash(c, "Course updated.")
	response.Redirect(c, "/admin/courses")
}

// TutorNew renders the blank teacher form.
// GET /admin/tutors/new
func (h *AdminHandler) TutorNew(c *gin.Context) {
	c.HTML(http.StatusOK, "tutor_form.html", page(c, "Add Teacher", gin.H{
		"Action": "/admin/tutors/new",
	}))
}

// TutorCreate creates a teacher from the form.
// POST /admin/tutors/new
func (h *AdminHandler) TutorCreate(c *gin.Context) {
	var form model.TeacherForm
	if fields := validator.Bind(c, &form); fields != nil {
		c.HTML(http.StatusBadRequest, "tutor_form.html", page(c, "Add Teacher", gin.H{
			"Action":  "/admin/tutors/new",
			"Teacher": form.Teacher(),
			"Fields":  fields,
		}))
		return
	}
	if _, err := h.backend.CreateTeacher(backendCtx(c), form); err != nil {
		h.log.Warn().Err(err).Msg("teacher create failed")
		c.HTML(http.StatusBadGateway, "tutor_form.html", page(c, "Add Teacher", gin.H{
			"Action":  "/admin/tutors/new",
			"Teacher": form.Teacher(),
			"Error":   gateway.Message(err),
		}))
		return
	}
	response.SetFlash(c, "Teacher added.")
	response.Redirect(c, "/admin/tutors")
}

// TutorEdit renders the teacher form pre-filled.
// GET /admin/tutors/:id/edit
func (h *AdminHandler) TutorEdit(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid teacher ID.", false)
		return
	}
	teacher, err := h.backend.GetTeacher(backendCtx(c), id)
	if err != nil {
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "tutor_form.html", page(c, "Edit Teacher", gin.H{
		"Action":  fmt.Sprintf("/admin/tutors/%d/edit", id),
		"Teacher": teacher,
	}))
}

// TutorUpdate saves teacher edits.
// POST /admin/tutors/:id/edit
func (h *AdminHandler) TutorUpdate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid teacher ID.", false)
		return
	}
	action := fmt.Sprintf("/admin/tutors/%d/edit", id)
	var form model.TeacherForm
	if fields := validator.Bind(c, &form); fields != nil {
		c.HTML(http.StatusBadRequest, "tutor_form.html", page(c, "Edit Teacher", gin.H{
			"Action":  action,
			"Teacher": form.Teacher(),
			"Fields":  fields,
		}))
		return
	}
	if _, err := h.backend.UpdateTeacher(backendCtx(c), id, form); err != nil {
		h.log.Warn().Err(err).Int("teacher_id", id).Msg("teacher update failed")
		c.HTML(http.StatusBadGateway, "tutor_form.html", page(c, "Edit Teacher", gin.H{
			"Action":  action,
			"Teacher": form.Teacher(),
			"Error":   gateway.Message(err),
		}))
		return
	}
	response.SetFlash(c, "Teacher updated.")
	response.Redirect(c, "/admin/tutors")
}

// Reports renders the reports placeholder.
// GET /admin/reports
func (h *AdminHandler) Reports(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_placeholder.html", page(c, "Reports", gin.H{
		"Heading": "Reports",
	}))
}

// Settings renders the settings placeholder.
// GET /admin/settings
func (h *AdminHandler) Settings(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_placeholder.html", page(c, "Settings", gin.H{
		"Heading": "Settings",
	}))
}
