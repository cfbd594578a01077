package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MalithSamaradiwakara/frontend/internal/config"
	"github.com/MalithSamaradiwakara/frontend/internal/model"
	"github.com/MalithSamaradiwakara/frontend/internal/response"
	"github.com/rs/zerolog"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{
		BackendBaseURL: baseURL,
		BackendTimeout: 2 * time.Second,
	}
	return NewClient(cfg, zerolog.Nop())
}

func TestClientDecodesSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/courses/7" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(model.Course{ID: 7, Title: "Maths", Price: 2500})
	}))
	defer srv.Close()

	course, err := newTestClient(srv.URL).GetCourse(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetCourse: %v", err)
	}
	if course.ID != 7 || course.Title != "Maths" || course.Price != 2500 {
		t.Errorf("course = %+v", course)
	}
}

func TestClientNormalizesClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Course not found"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetCourse(context.Background(), 99)
	if err == nil {
		t.Fatal("no error for 404")
	}
	var ge *Error
	if !errors.As(err, &ge) {
		t.Fatalf("err = %T", err)
	}
	if ge.Kind != KindClient || ge.Status != http.StatusNotFound {
		t.Errorf("error = %+v", ge)
	}
	if ge.Message != "Course not found" {
		t.Errorf("message = %q, want backend-provided message", ge.Message)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound = false")
	}
}

func TestClientNormalizesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListCourses(context.Background())
	if err == nil {
		t.Fatal("no error for 503")
	}
	if KindOf(err) != KindServer {
		t.Errorf("kind = %v, want server", KindOf(err))
	}
	var ge *Error
	if errors.As(err, &ge) && ge.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d", ge.Status)
	}
}

func TestClientNormalizesNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := newTestClient(srv.URL).ListCourses(context.Background())
	if err == nil {
		t.Fatal("no error against closed server")
	}
	if KindOf(err) != KindNetwork {
		t.Errorf("kind = %v, want network", KindOf(err))
	}
	var ge *Error
	if errors.As(err, &ge) && ge.Status != 0 {
		t.Errorf("network error carries status %d", ge.Status)
	}
}

func TestClientAttachesBearer(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	ctx := WithBearer(context.Background(), "tok-123")
	if _, err := client.ListCourses(ctx); err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if got != "Bearer tok-123" {
		t.Errorf("Authorization = %q", got)
	}

	// Without a token the header stays absent.
	if _, err := client.ListCourses(context.Background()); err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if got != "" {
		t.Errorf("Authorization = %q, want empty", got)
	}
}

func TestClientAuthoringEndpoints(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		if strings.HasPrefix(r.URL.Path, "/api/attempts/") || strings.HasPrefix(r.URL.Path, "/api/submissions/") {
			w.Write([]byte("[]"))
			return
		}
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func() error
		method string
		path   string
	}{
		{"CreateCourse", func() error {
			_, err := client.CreateCourse(ctx, model.CourseForm{Title: "Maths"})
			return err
		}, "POST", "/api/courses"},
		{"UpdateCourse", func() error {
			_, err := client.UpdateCourse(ctx, 3, model.CourseForm{Title: "Maths"})
			return err
		}, "PUT", "/api/courses/3"},
		{"CreateQuiz", func() error {
			_, err := client.CreateQuiz(ctx, model.Quiz{Title: "Algebra"})
			return err
		}, "POST", "/api/quizzes"},
		{"UpdateQuiz", func() error {
			_, err := client.UpdateQuiz(ctx, 4, model.Quiz{Title: "Algebra"})
			return err
		}, "PUT", "/api/quizzes/4"},
		{"DeleteQuiz", func() error {
			return client.DeleteQuiz(ctx, 4)
		}, "DELETE", "/api/quizzes/4"},
		{"AttemptsByQuiz", func() error {
			_, err := client.AttemptsByQuiz(ctx, 4)
			return err
		}, "GET", "/api/attempts/quiz/4"},
		{"SubmissionsByAssignment", func() error {
			_, err := client.SubmissionsByAssignment(ctx, 9)
			return err
		}, "GET", "/api/submissions/assignment/9"},
		{"CreateTeacher", func() error {
			_, err := client.CreateTeacher(ctx, model.TeacherForm{Name: "Nimal", Email: "n@x.lk"})
			return err
		}, "POST", "/teacher"},
		{"UpdateTeacher", func() error {
			_, err := client.UpdateTeacher(ctx, 5, model.TeacherForm{Name: "Nimal", Email: "n@x.lk"})
			return err
		}, "PUT", "/teacher/5"},
	}
	for _, tt := range tests {
		if err := tt.call(); err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if gotMethod != tt.method || gotPath != tt.path {
			t.Errorf("%s hit %s %s, want %s %s", tt.name, gotMethod, gotPath, tt.method, tt.path)
		}
	}
}

func TestClientForwardsRequestID(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	ctx := response.WithRequestID(context.Background(), "req-abc")
	if _, err := client.ListCourses(ctx); err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if got != "req-abc" {
		t.Errorf("X-Request-ID = %q, want req-abc", got)
	}

	// Without an ID on the context the header stays absent.
	if _, err := client.ListCourses(context.Background()); err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if got != "" {
		t.Errorf("X-Request-ID = %q, want empty", got)
	}
}

func TestClientPostsJSON(t *testing.T) {
	var (
		gotContentType string
		gotBody        model.LoginRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(model.SessionSeed{ActorID: "u-1", Role: "Student", DisplayName: "Amal", Token: "t"})
	}))
	defer srv.Close()

	seed, err := newTestClient(srv.URL).Login(context.Background(), model.LoginRequest{
		Username: "amal", Password: "pw", UserType: "Student",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotBody.Username != "amal" || gotBody.UserType != "Student" {
		t.Errorf("body = %+v", gotBody)
	}
	if seed.ActorID != "u-1" || seed.Role != "Student" {
		t.Errorf("seed = %+v", seed)
	}
}

func TestClientUploadsMultipart(t *testing.T) {
	var (
		gotFile      []byte
		gotFilename  string
		gotStudentID string
		gotCourseID  string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
			return
		}
		f, fh, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile: %v", err)
			return
		}
		defer f.Close()
		gotFile, _ = io.ReadAll(f)
		gotFilename = fh.Filename
		gotStudentID = r.FormValue("studentId")
		gotCourseID = r.FormValue("courseId")
		json.NewEncoder(w).Encode(model.UploadResult{FilePath: "/uploads/slip.png"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	res, err := client.UploadPaymentSlip(context.Background(),
		strings.NewReader("png-bytes"), "slip.png", "42", "7")
	if err != nil {
		t.Fatalf("UploadPaymentSlip: %v", err)
	}
	if res.FilePath != "/uploads/slip.png" {
		t.Errorf("FilePath = %q", res.FilePath)
	}
	if string(gotFile) != "png-bytes" || gotFilename != "slip.png" {
		t.Errorf("file = %q name = %q", gotFile, gotFilename)
	}
	if gotStudentID != "42" || gotCourseID != "7" {
		t.Errorf("fields: sId=%q courseId=%q", gotStudentID, gotCourseID)
	}
}
