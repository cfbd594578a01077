package workflow

import "github.com/MalithSamaradiwakara/frontend/internal/model"

// Score computes the provisional quiz percentage: matched answers over
// total questions, times 100, as a raw float64. No rounding happens here;
// display formatting rounds, and the server-recorded value is the
// authoritative one regardless.
//
// answers maps questionId to the selected 1-based option index.
func Score(questions []model.Question, answers map[int]int) float64 {
	if len(questions) == 0 {
		return 0
	}
	matches := 0
	for _, q := range questions {
		if answers[q.ID] == q.Correct {
			matches++
		}
	}
	return float64(matches) / float64(len(questions)) * 100
}
