package view

import (
	"net/http"
	"strconv"

	"github.com/MalithSamaradiwakara/frontend/internal/gateway"
	"github.com/MalithSamaradiwakara/frontend/internal/middleware"
	"github.com/MalithSamaradiwakara/frontend/internal/response"
	"github.com/gin-gonic/gin"
)

// CatalogHandler renders the public course and tutor catalog.
type CatalogHandler struct {
	backend *gateway.Client
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(backend *gateway.Client) *CatalogHandler {
	return &CatalogHandler{backend: backend}
}

// Home renders the landing page with a course preview.
// GET /
func (h *CatalogHandler) Home(c *gin.Context) {
	courses, err := h.backend.ListCourses(backendCtx(c))
	if err != nil {
		// The landing page still renders without the preview strip.
		courses = nil
	}
	if len(courses) > 6 {
		courses = courses[:6]
	}
	c.HTML(http.StatusOK, "home.html", page(c, "Brightway", gin.H{
		"Courses": courses,
	}))
}

// Courses renders the full catalog.
// GET /courses
func (h *CatalogHandler) Courses(c *gin.Context) {
	courses, err := h.backend.ListCourses(backendCtx(c))
	if err != nil {
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "courses.html", page(c, "Courses", gin.H{
		"Courses": courses,
	}))
}

// CourseDetails renders one course. The router only checks the segment's
// presence; numeric validation happens here.
// GET /course/:courseId
func (h *CatalogHandler) CourseDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("courseId"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid course ID.", false)
		return
	}
	course, err := h.backend.GetCourse(backendCtx(c), id)
	if err != nil {
		if gateway.IsNotFound(err) {
			response.ErrorPage(c, http.StatusNotFound, "Course not found.", false)
			return
		}
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "course_details.html", page(c, course.Title, gin.H{
		"Course": course,
	}))
}

// CourseContent renders a course's assignments and quizzes overview.
// GET /course/:courseId/content
func (h *CatalogHandler) CourseContent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("courseId"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid course ID.", false)
		return
	}
	ctx := backendCtx(c)
	course, err := h.backend.GetCourse(ctx, id)
	if err != nil {
		loadFailed(c, err)
		return
	}
	assignments, err := h.backend.AssignmentsByCourse(ctx, id)
	if err != nil {
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "course_content.html", page(c, course.Title, gin.H{
		"Course":      course,
		"Assignments": assignments,
	}))
}

// Tutors renders the tutor directory.
// GET /tutors
func (h *CatalogHandler) Tutors(c *gin.Context) {
	teachers, err := h.backend.ListTeachers(backendCtx(c))
	if err != nil {
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "tutors.html", page(c, "Tutors", gin.H{
		"Teachers": teachers,
	}))
}

// TutorDetails renders one tutor profile.
// GET /tutors/viewtutors/:id
func (h *CatalogHandler) TutorDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid tutor ID.", false)
		return
	}
	teacher, err := h.backend.GetTeacher(backendCtx(c), id)
	if err != nil {
		if gateway.IsNotFound(err) {
			response.ErrorPage(c, http.StatusNotFound, "Tutor not found.", false)
			return
		}
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "tutor_details.html", page(c, teacher.Name, gin.H{
		"Teacher": teacher,
	}))
}

// MyCourses renders the logged-in student's enrollments; anonymous
// visitors see a prompt to log in.
// GET /my-courses
func (h *CatalogHandler) MyCourses(c *gin.Context) {
	snap := middleware.GetSession(c)
	if snap.Anonymous() || snap.StudentID == "" {
		c.HTML(http.StatusOK, "my_courses.html", page(c, "My Courses", nil))
		return
	}
	enrollments, err := h.backend.EnrollmentsByStudent(backendCtx(c), snap.StudentID)
	if err != nil {
		loadFailed(c, err)
		return
	}
	c.HTML(http.StatusOK, "my_courses.html", page(c, "My Courses", gin.H{
		"Enrollments": enrollments,
	}))
}
