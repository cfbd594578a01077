package view

import (
	"io"
	"net/http"
	"strconv"

	"github.com/MalithSamaradiwakara/frontend/internal/gateway"
	"github.com/MalithSamaradiwakara/frontend/internal/middleware"
	"github.com/MalithSamaradiwakara/frontend/internal/response"
	"github.com/MalithSamaradiwakara/frontend/internal/workflow"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EnrollmentHandler owns the student enrollment flow.
type EnrollmentHandler struct {
	backend *gateway.Client
	log     zerolog.Logger
}

// NewEnrollmentHandler creates an EnrollmentHandler.
func NewEnrollmentHandler(backend *gateway.Client, log zerolog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{backend: backend, log: log}
}

// Form renders the enrollment payment form for a course.
// GET /enroll/:courseId
func (h *EnrollmentHandler) Form(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("courseId"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid course ID.", false)
		return
	}

	wf := workflow.NewEnrollment(h.backend, courseID)
	if err := wf.Load(gateway.WithBearer(c.Request.Context(), middleware.GetSession(c).Token)); err != nil {
		loadFailed(c, err)
		return
	}

	c.HTML(http.StatusOK, "enroll.html", page(c, "Course Enrollment", gin.H{
		"Course": wf.Course,
	}))
}

// Submit validates the draft locally, uploads the payment slip, and
// creates the enrollment record. Local validation failures re-render the
// form without any backend contact.
// POST /enroll/:courseId
func (h *EnrollmentHandler) Submit(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("courseId"))
	if err != nil {
		response.ErrorPage(c, http.StatusBadRequest, "Invalid course ID.", false)
		return
	}

	snap := middleware.GetSession(c)
	ctx := backendCtx(c)

	wf := workflow.NewEnrollment(h.backend, courseID)
	if err := wf.Load(ctx); err != nil {
		loadFailed(c, err)
		return
	}

	wf.Draft = workflow.EnrollmentDraft{
		StudentID:  snap.StudentID,
		CourseID:   c.Param("courseId"),
		PaymentRef: c.PostForm("paymentRef"),
		Slip:       readSlip(c),
	}

	fields, err := wf.Submit(ctx)
	if fields != nil {
		c.HTML(http.StatusBadRequest, "enroll.html", page(c, "Course Enrollment", gin.H{
			"Course":     wf.Course,
			"Fields":     fields,
			"PaymentRef": wf.Draft.PaymentRef,
		}))
		return
	}
	if err != nil {
		h.log.Warn().Err(err).Int("course_id", courseID).Msg("enrollment failed")
		c.HTML(http.StatusBadGateway, "enroll.html", page(c, "Course Enrollment", gin.H{
			"Course":     wf.Course,
			"Error":      gateway.Message(err),
			"PaymentRef": wf.Draft.PaymentRef,
		}))
		return
	}

	response.SetFlash(c, "Enrollment successful! Your payment is pending review.")
	response.Redirect(c, "/student/dashboard")
}

// readSlip extracts the uploaded payment slip from the multipart form.
// Absence is reported through the draft's validation, not here.
func readSlip(c *gin.Context) workflow.SlipFile {
	fh, err := c.FormFile("paymentSlip")
	if err != nil {
		return workflow.SlipFile{}
	}
	f, err := fh.Open()
	if err != nil {
		return workflow.SlipFile{}
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return workflow.SlipFile{}
	}
	return workflow.SlipFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}
}
