package workflow

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

// fakeEnrollmentBackend records calls so tests can assert local validation
// never touches the network.
type fakeEnrollmentBackend struct {
	course    model.Course
	courseErr error
	uploadErr error
	createErr error

	uploads int
	creates int

	lastUploadName string
	lastRecord     model.Enrollment
}

func (f *fakeEnrollmentBackend) GetCourse(_ context.Context, id int) (model.Course, error) {
	if f.courseErr != nil {
		return model.Course{}, f.courseErr
	}
	return f.course, nil
}

func (f *fakeEnrollmentBackend) UploadPaymentSlip(_ context.Context, file io.Reader, filename, studentID, courseID string) (model.UploadResult, error) {
	f.uploads++
	f.lastUploadName = filename
	if f.uploadErr != nil {
		return model.UploadResult{}, f.uploadErr
	}
	return model.UploadResult{FilePath: "/uploads/" + filename}, nil
}

func (f *fakeEnrollmentBackend) CreateEnrollment(_ context.Context, rec model.Enrollment) (model.Enrollment, error) {
	f.creates++
	f.lastRecord = rec
	if f.createErr != nil {
		return model.Enrollment{}, f.createErr
	}
	rec.Status = model.EnrollmentPending
	return rec, nil
}

func validDraft() EnrollmentDraft {
	return EnrollmentDraft{
		StudentID:  "42",
		CourseID:   "7",
		PaymentRef: "PAY-001",
		Slip:       SlipFile{Name: "slip.png", ContentType: "image/png", Data: []byte("png-bytes")},
	}
}

func TestEnrollmentLoadFailureIsTerminal(t *testing.T) {
	backend := &fakeEnrollmentBackend{courseErr: errors.New("boom")}
	wf := NewEnrollment(backend, 7)

	if err := wf.Load(context.Background()); err == nil {
		t.Fatal("Load succeeded with failing backend")
	}
	if wf.State() != StateFailed {
		t.Errorf("state = %v, want Failed", wf.State())
	}
}

func TestEnrollmentValidationBlocksBackendCalls(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EnrollmentDraft)
		field  string
	}{
		{"missing slip", func(d *EnrollmentDraft) { d.Slip = SlipFile{} }, "paymentSlip"},
		{"wrong slip type", func(d *EnrollmentDraft) { d.Slip.ContentType = "text/html" }, "paymentSlip"},
		{"missing payment ref", func(d *EnrollmentDraft) { d.PaymentRef = "   " }, "paymentRef"},
		{"missing student id", func(d *EnrollmentDraft) { d.StudentID = "" }, "studentId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeEnrollmentBackend{course: model.Course{ID: 7}}
			wf := NewEnrollment(backend, 7)
			if err := wf.Load(context.Background()); err != nil {
				t.Fatalf("Load: %v", err)
			}

			draft := validDraft()
			tt.mutate(&draft)
			wf.Draft = draft

			fields, err := wf.Submit(context.Background())
			if err != nil {
				t.Fatalf("Submit err = %v", err)
			}
			if fields[tt.field] == "" {
				t.Errorf("no field error under %q: %v", tt.field, fields)
			}
			if backend.uploads != 0 || backend.creates != 0 {
				t.Errorf("backend contacted on local validation failure (uploads=%d creates=%d)", backend.uploads, backend.creates)
			}
			if wf.State() != StateReady {
				t.Errorf("state = %v, want Ready", wf.State())
			}
		})
	}
}

func TestEnrollmentSlipTypes(t *testing.T) {
	tests := []struct {
		contentType string
		valid       bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"application/pdf", true},
		{"application/zip", false},
		{"text/plain", false},
		{"", false},
	}
	for _, tt := range tests {
		f := SlipFile{Data: []byte("x"), ContentType: tt.contentType}
		if got := f.ValidType(); got != tt.valid {
			t.Errorf("ValidType(%q) = %v, want %v", tt.contentType, got, tt.valid)
		}
	}
}

func TestEnrollmentSubmitUploadsThenCreates(t *testing.T) {
	backend := &fakeEnrollmentBackend{course: model.Course{ID: 7, Title: "Maths"}}
	wf := NewEnrollment(backend, 7)
	if err := wf.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	wf.Draft = validDraft()

	fields, err := wf.Submit(context.Background())
	if fields != nil || err != nil {
		t.Fatalf("Submit = (%v, %v)", fields, err)
	}
	if backend.uploads != 1 || backend.creates != 1 {
		t.Fatalf("uploads=%d creates=%d, want 1/1", backend.uploads, backend.creates)
	}
	if backend.lastUploadName != "slip.png" {
		t.Errorf("upload filename = %q", backend.lastUploadName)
	}
	rec := backend.lastRecord
	if rec.StudentID != "42" || rec.CourseID != "7" || rec.PaymentRef != "PAY-001" {
		t.Errorf("record = %+v", rec)
	}
	if rec.PaymentSlipPath != "/uploads/slip.png" {
		t.Errorf("slip path = %q", rec.PaymentSlipPath)
	}
	if rec.Date == "" {
		t.Error("record carries no date")
	}
	if wf.State() != StateSucceeded {
		t.Errorf("state = %v, want Succeeded", wf.State())
	}
	if wf.Result.Status != model.EnrollmentPending {
		t.Errorf("result status = %q", wf.Result.Status)
	}
}

func TestEnrollmentUploadFailureSkipsCreate(t *testing.T) {
	backend := &fakeEnrollmentBackend{course: model.Course{ID: 7}, uploadErr: errors.New("413")}
	wf := NewEnrollment(backend, 7)
	if err := wf.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	wf.Draft = validDraft()

	fields, err := wf.Submit(context.Background())
	if fields != nil {
		t.Fatalf("fields = %v", fields)
	}
	if err == nil {
		t.Fatal("Submit succeeded with failing upload")
	}
	if backend.creates != 0 {
		t.Error("enrollment created despite failed upload")
	}
	// Draft preserved, machine back in Ready for a retry.
	if wf.State() != StateReady {
		t.Errorf("state = %v, want Ready", wf.State())
	}
	if wf.Draft.PaymentRef != "PAY-001" {
		t.Errorf("draft lost: %+v", wf.Draft)
	}
}

func TestEnrollmentCreateFailureReturnsToReady(t *testing.T) {
	backend := &fakeEnrollmentBackend{course: model.Course{ID: 7}, createErr: errors.New("500")}
	wf := NewEnrollment(backend, 7)
	if err := wf.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	wf.Draft = validDraft()

	if _, err := wf.Submit(context.Background()); err == nil {
		t.Fatal("Submit succeeded with failing create")
	}
	if wf.State() != StateReady {
		t.Errorf("state = %v, want Ready", wf.State())
	}

	// Retry succeeds once the backend recovers.
	backend.createErr = nil
	fields, err := wf.Submit(context.Background())
	if fields != nil || err != nil {
		t.Fatalf("retry = (%v, %v)", fields, err)
	}
	if wf.State() != StateSucceeded {
		t.Errorf("state = %v, want Succeeded", wf.State())
	}
}
