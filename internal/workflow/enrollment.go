package workflow

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

// EnrollmentBackend is the gateway subset the enrollment workflow needs.
type EnrollmentBackend interface {
	GetCourse(ctx context.Context, id int) (model.Course, error)
	UploadPaymentSlip(ctx context.Context, file io.Reader, filename, studentID, courseID string) (model.UploadResult, error)
	CreateEnrollment(ctx context.Context, rec model.Enrollment) (model.Enrollment, error)
}

// SlipFile is the uploaded payment slip: contents plus the browser-reported
// name and MIME type.
type SlipFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// Present reports whether a slip was actually attached.
func (f SlipFile) Present() bool {
	return len(f.Data) > 0
}

// ValidType accepts any image or exactly a PDF, by MIME prefix check.
func (f SlipFile) ValidType() bool {
	return strings.HasPrefix(f.ContentType, "image/") || f.ContentType == "application/pdf"
}

// EnrollmentDraft is the view-local input state, not persisted beyond the
// submission attempt.
type EnrollmentDraft struct {
	StudentID  string
	CourseID   string
	PaymentRef string
	Slip       SlipFile
}

// Validate gates submission locally; failures never reach the network.
func (d EnrollmentDraft) Validate() map[string]string {
	fields := make(map[string]string)
	if !d.Slip.Present() {
		fields["paymentSlip"] = "Please upload your payment slip"
	} else if !d.Slip.ValidType() {
		fields["paymentSlip"] = "Please upload a valid image or PDF file."
	}
	if strings.TrimSpace(d.PaymentRef) == "" {
		fields["paymentRef"] = "Please enter payment reference number"
	}
	if d.StudentID == "" {
		fields["studentId"] = "Student identity could not be resolved. Please log in again."
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Enrollment drives the course enrollment flow: load the course, collect
// the payment draft, upload the slip, then create the record.
type Enrollment struct {
	machine
	backend  EnrollmentBackend
	courseID int

	Course model.Course
	Draft  EnrollmentDraft
	Result model.Enrollment
}

// NewEnrollment starts an enrollment workflow for one course.
func NewEnrollment(backend EnrollmentBackend, courseID int) *Enrollment {
	return &Enrollment{machine: newMachine(), backend: backend, courseID: courseID}
}

// Load fetches the course the form depends on. A failure is terminal:
// no partial form is rendered.
func (w *Enrollment) Load(ctx context.Context) error {
	course, err := w.backend.GetCourse(ctx, w.courseID)
	if err != nil {
		w.fail(fmt.Errorf("load course %d: %w", w.courseID, err))
		return w.Err()
	}
	w.Course = course
	w.ready()
	return nil
}

// Submit validates the draft, uploads the slip, and creates the
// enrollment record. Returns field errors for local validation failures
// (no network contact) or the gateway error for backend failures, in
// which case the machine is back in Ready with the draft preserved.
func (w *Enrollment) Submit(ctx context.Context) (map[string]string, error) {
	if fields := w.Draft.Validate(); fields != nil {
		return fields, nil
	}
	if !w.beginSubmit() {
		return nil, fmt.Errorf("submission already in progress")
	}

	upload, err := w.backend.UploadPaymentSlip(ctx,
		bytes.NewReader(w.Draft.Slip.Data), w.Draft.Slip.Name,
		w.Draft.StudentID, w.Draft.CourseID)
	if err != nil {
		w.finishSubmit(err)
		return nil, err
	}

	rec := model.Enrollment{
		StudentID:       w.Draft.StudentID,
		CourseID:        w.Draft.CourseID,
		PaymentRef:      w.Draft.PaymentRef,
		Date:            time.Now().Format("2006-01-02"),
		PaymentSlipPath: upload.FilePath,
	}
	created, err := w.backend.CreateEnrollment(ctx, rec)
	w.finishSubmit(err)
	if err != nil {
		return nil, err
	}
	w.Result = created
	return nil, nil
}
