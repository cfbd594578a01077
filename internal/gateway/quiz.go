package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

// ListQuizzes fetches all quizzes.
func (c *Client) ListQuizzes(ctx context.Context) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := c.do(ctx, http.MethodGet, "/api/quizzes", nil, &quizzes)
	return quizzes, err
}

// GetQuiz fetches one quiz by id.
func (c *Client) GetQuiz(ctx context.Context, id int) (model.Quiz, error) {
	var quiz model.Quiz
	err := c.do(ctx, http.MethodGet, "/api/quizzes/"+strconv.Itoa(id), nil, &quiz)
	return quiz, err
}

// CreateQuiz creates a quiz.
func (c *Client) CreateQuiz(ctx context.Context, quiz model.Quiz) (model.Quiz, error) {
	var created model.Quiz
	err := c.do(ctx, http.MethodPost, "/api/quizzes", quiz, &created)
	return created, err
}

// UpdateQuiz updates a quiz.
func (c *Client) UpdateQuiz(ctx context.Context, id int, quiz model.Quiz) (model.Quiz, error) {
	var updated model.Quiz
	err := c.do(ctx, http.MethodPut, "/api/quizzes/"+strconv.Itoa(id), quiz, &updated)
	return updated, err
}

// DeleteQuiz deletes a quiz.
func (c *Client) DeleteQuiz(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/quizzes/"+strconv.Itoa(id), nil, nil)
}

// QuestionsByQuiz fetches a quiz's question list.
func (c *Client) QuestionsByQuiz(ctx context.Context, quizID int) ([]model.Question, error) {
	var questions []model.Question
	err := c.do(ctx, http.MethodGet, "/api/questions/quiz/"+strconv.Itoa(quizID), nil, &questions)
	return questions, err
}

// CreateAttempt records a quiz attempt. The marks field is provisional;
// the server's stored value is authoritative.
func (c *Client) CreateAttempt(ctx context.Context, attempt model.Attempt) error {
	return c.do(ctx, http.MethodPost, "/api/attempts", attempt, nil)
}

// AttemptsByQuiz lists attempts for a quiz.
func (c *Client) AttemptsByQuiz(ctx context.Context, quizID int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := c.do(ctx, http.MethodGet, "/api/attempts/quiz/"+strconv.Itoa(quizID), nil, &attempts)
	return attempts, err
}

// AttemptsByStudent lists a student's attempts.
func (c *Client) AttemptsByStudent(ctx context.Context, studentID int) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := c.do(ctx, http.MethodGet, "/api/attempts/student/"+strconv.Itoa(studentID), nil, &attempts)
	return attempts, err
}
