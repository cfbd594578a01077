package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
	"golang.org/x/sync/errgroup"
)

// QuizBackend is the gateway subset the quiz-attempt workflow needs.
type QuizBackend interface {
	GetQuiz(ctx context.Context, id int) (model.Quiz, error)
	QuestionsByQuiz(ctx context.Context, quizID int) ([]model.Question, error)
	CreateAttempt(ctx context.Context, attempt model.Attempt) error
}

// QuizAttempt drives the quiz-taking flow: load the quiz and its
// questions jointly, collect one answer per question, score, submit.
type QuizAttempt struct {
	machine
	backend   QuizBackend
	quizID    int
	studentID int

	Quiz      model.Quiz
	Questions []model.Question
	// Answers maps questionId to the selected 1-based option index.
	Answers map[int]int
}

// NewQuizAttempt starts a quiz attempt for one student and quiz.
func NewQuizAttempt(backend QuizBackend, quizID, studentID int) *QuizAttempt {
	return &QuizAttempt{
		machine:   newMachine(),
		backend:   backend,
		quizID:    quizID,
		studentID: studentID,
		Answers:   make(map[int]int),
	}
}

// Load fetches the quiz and its question list in parallel and waits for
// both. Either failure fails the whole load; a quiz without questions is
// also a load failure, matching the no-partial-form rule.
func (w *QuizAttempt) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		quiz, err := w.backend.GetQuiz(gctx, w.quizID)
		if err != nil {
			return fmt.Errorf("load quiz %d: %w", w.quizID, err)
		}
		w.Quiz = quiz
		return nil
	})
	g.Go(func() error {
		questions, err := w.backend.QuestionsByQuiz(gctx, w.quizID)
		if err != nil {
			return fmt.Errorf("load questions for quiz %d: %w", w.quizID, err)
		}
		w.Questions = questions
		return nil
	})

	if err := g.Wait(); err != nil {
		w.fail(err)
		return w.Err()
	}
	if len(w.Questions) == 0 {
		w.fail(fmt.Errorf("quiz %d has no questions", w.quizID))
		return w.Err()
	}
	w.ready()
	return nil
}

// Answer records a selection for one question.
func (w *QuizAttempt) Answer(questionID, optionIndex int) {
	w.Answers[questionID] = optionIndex
}

// Validate gates submission: every loaded question must have an answer.
func (w *QuizAttempt) Validate() map[string]string {
	for _, q := range w.Questions {
		if _, ok := w.Answers[q.ID]; !ok {
			return map[string]string{"answers": "Please answer all questions before submitting."}
		}
	}
	return nil
}

// ProvisionalScore is the client-computed percentage, display only.
func (w *QuizAttempt) ProvisionalScore() float64 {
	return Score(w.Questions, w.Answers)
}

// Submit records the attempt with the provisional score attached. Field
// errors are local and never contact the server; a backend failure leaves
// the machine in Ready with the answers preserved.
func (w *QuizAttempt) Submit(ctx context.Context) (map[string]string, error) {
	if fields := w.Validate(); fields != nil {
		return fields, nil
	}
	if !w.beginSubmit() {
		return nil, fmt.Errorf("submission already in progress")
	}

	attempt := model.Attempt{
		ID:             model.AttemptKey{QuizID: w.quizID, StudentID: w.studentID},
		Student:        model.StudentRef{StudentID: w.studentID},
		Quiz:           model.QuizRef{QuizID: w.quizID},
		SubmissionDate: time.Now().UTC().Format(time.RFC3339),
		Feedback:       "Auto-generated feedback",
		Marks:          w.ProvisionalScore(),
	}
	err := w.backend.CreateAttempt(ctx, attempt)
	w.finishSubmit(err)
	if err != nil {
		return nil, err
	}
	return nil, nil
}
