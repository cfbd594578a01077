package workflow

import (
	"testing"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

func questionsFixture() []model.Question {
	return []model.Question{
		{ID: 1, Text: "Q1", Answers: "a;b;c", Correct: 1},
		{ID: 2, Text: "Q2", Answers: "a;b;c", Correct: 2},
		{ID: 3, Text: "Q3", Answers: "a;b;c", Correct: 1},
		{ID: 4, Text: "Q4", Answers: "a;b;c", Correct: 3},
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		answers map[int]int
		want    float64
	}{
		{"all correct", map[int]int{1: 1, 2: 2, 3: 1, 4: 3}, 100},
		{"three of four", map[int]int{1: 1, 2: 2, 3: 2, 4: 3}, 75},
		{"none correct", map[int]int{1: 2, 2: 3, 3: 2, 4: 1}, 0},
		{"unanswered count as wrong", map[int]int{1: 1}, 25},
		{"nil answers", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(questionsFixture(), tt.answers); got != tt.want {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreNoQuestions(t *testing.T) {
	if got := Score(nil, map[int]int{1: 1}); got != 0 {
		t.Errorf("Score = %v, want 0", got)
	}
}

func TestScoreUnrounded(t *testing.T) {
	questions := []model.Question{
		{ID: 1, Correct: 1},
		{ID: 2, Correct: 1},
		{ID: 3, Correct: 1},
	}
	got := Score(questions, map[int]int{1: 1})
	want := float64(1) / 3 * 100
	if got != want {
		t.Errorf("Score = %v, want raw %v", got, want)
	}
}
