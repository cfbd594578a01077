package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

type fakeQuizBackend struct {
	quiz        model.Quiz
	questions   []model.Question
	quizErr     error
	questionErr error
	attemptErr  error

	attempts    int
	lastAttempt model.Attempt
}

func (f *fakeQuizBackend) GetQuiz(_ context.Context, id int) (model.Quiz, error) {
	if f.quizErr != nil {
		return model.Quiz{}, f.quizErr
	}
	return f.quiz, nil
}

func (f *fakeQuizBackend) QuestionsByQuiz(_ context.Context, quizID int) ([]model.Question, error) {
	if f.questionErr != nil {
		return nil, f.questionErr
	}
	return f.questions, nil
}

func (f *fakeQuizBackend) CreateAttempt(_ context.Context, attempt model.Attempt) error {
	f.attempts++
	f.lastAttempt = attempt
	return f.attemptErr
}

func quizBackendFixture() *fakeQuizBackend {
	return &fakeQuizBackend{
		quiz:      model.Quiz{ID: 12, Title: "Algebra"},
		questions: questionsFixture(),
	}
}

func TestQuizAttemptLoad(t *testing.T) {
	wf := NewQuizAttempt(quizBackendFixture(), 12, 7)
	if err := wf.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if wf.State() != StateReady {
		t.Errorf("state = %v, want Ready", wf.State())
	}
	if wf.Quiz.Title != "Algebra" || len(wf.Questions) != 4 {
		t.Errorf("loaded quiz=%+v questions=%d", wf.Quiz, len(wf.Questions))
	}
}

func TestQuizAttemptLoadFailsWhole(t *testing.T) {
	t.Run("quiz fetch fails", func(t *testing.T) {
		backend := quizBackendFixture()
		backend.quizErr = errors.New("404")
		wf := NewQuizAttempt(backend, 12, 7)
		if err := wf.Load(context.Background()); err == nil {
			t.Fatal("Load succeeded")
		}
		if wf.State() != StateFailed {
			t.Errorf("state = %v, want Failed", wf.State())
		}
	})

	t.Run("question fetch fails", func(t *testing.T) {
		backend := quizBackendFixture()
		backend.questionErr = errors.New("503")
		wf := NewQuizAttempt(backend, 12, 7)
		if err := wf.Load(context.Background()); err == nil {
			t.Fatal("Load succeeded")
		}
		if wf.State() != StateFailed {
			t.Errorf("state = %v, want Failed", wf.State())
		}
	})

	t.Run("no questions", func(t *testing.T) {
		backend := quizBackendFixture()
		backend.questions = nil
		wf := NewQuizAttempt(backend, 12, 7)
		if err := wf.Load(context.Background()); err == nil {
			t.Fatal("Load succeeded for empty quiz")
		}
		if wf.State() != StateFailed {
			t.Errorf("state = %v, want Failed", wf.State())
		}
	})
}

func TestQuizAttemptValidateRequiresAllAnswers(t *testing.T) {
	backend := quizBackendFixture()
	wf := NewQuizAttempt(backend, 12, 7)
	if err := wf.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	wf.Answer(1, 1)
	wf.Answer(2, 2)

	fields, err := wf.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit err = %v", err)
	}
	if fields["answers"] == "" {
		t.Errorf("no answers field error: %v", fields)
	}
	if backend.attempts != 0 {
		t.Error("attempt recorded despite incomplete answers")
	}
}

func TestQuizAttemptSubmit(t *testing.T) {
	backend := quizBackendFixture()
	wf := NewQuizAttempt(backend, 12, 7)
	if err := wf.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Three of four correct.
	wf.Answer(1, 1)
	wf.Answer(2, 2)
	wf.Answer(3, 2)
	wf.Answer(4, 3)

	if got := wf.ProvisionalScore(); got != 75 {
		t.Errorf("ProvisionalScore = %v, want 75", got)
	}

	fields, err := wf.Submit(context.Background())
	if fields != nil || err != nil {
		t.Fatalf("Submit = (%v, %v)", fields, err)
	}
	if backend.attempts != 1 {
		t.Fatalf("attempts = %d", backend.attempts)
	}

	a := backend.lastAttempt
	if a.ID.QuizID != 12 || a.ID.StudentID != 7 {
		t.Errorf("attempt key = %+v", a.ID)
	}
	if a.Student.StudentID != 7 || a.Quiz.QuizID != 12 {
		t.Errorf("attempt refs = %+v / %+v", a.Student, a.Quiz)
	}
	if a.Marks != 75 {
		t.Errorf("marks = %v, want 75", a.Marks)
	}
	if a.SubmissionDate == "" {
		t.Error("attempt carries no submission date")
	}
	if wf.State() != StateSucceeded {
		t.Errorf("state = %v, want Succeeded", wf.State())
	}
}

func TestQuizAttemptSubmitFailureKeepsAnswers(t *testing.T) {
	backend := quizBackendFixture()
	backend.attemptErr = errors.New("502")
	wf := NewQuizAttempt(backend, 12, 7)
	if err := wf.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, q := range wf.Questions {
		wf.Answer(q.ID, q.Correct)
	}

	if _, err := wf.Submit(context.Background()); err == nil {
		t.Fatal("Submit succeeded with failing backend")
	}
	if wf.State() != StateReady {
		t.Errorf("state = %v, want Ready", wf.State())
	}
	if len(wf.Answers) != len(wf.Questions) {
		t.Errorf("answers lost: %v", wf.Answers)
	}

	backend.attemptErr = nil
	fields, err := wf.Submit(context.Background())
	if fields != nil || err != nil {
		t.Fatalf("retry = (%v, %v)", fields, err)
	}
	if wf.State() != StateSucceeded {
		t.Errorf("state = %v, want Succeeded", wf.State())
	}
}
