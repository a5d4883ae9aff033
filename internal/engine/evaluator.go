package engine

import (
	"fmt"
	"math"
	"strings"

	"quizzer-backend/internal/models"
)

// Detail is the per-question outcome of an evaluation.
type Detail struct {
	QuestionID    string `json:"questionId"`
	CorrectAnswer string `json:"correctAnswer"`
	UserAnswer    string `json:"userAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// EvaluationResult aggregates per-question details, a percentage score and
// follow-up study suggestions.
type EvaluationResult struct {
	Details     []Detail `json:"details"`
	Score       int      `json:"score"`
	Suggestions []string `json:"suggestions"`
}

// Evaluate scores responses against the canonical answers in questions.
// Unanswered questions count as wrong. The question set is authoritative:
// responses for unknown question ids are ignored.
func Evaluate(questions []models.Question, responses []models.AnswerResponse) EvaluationResult {
	answers := make(map[string]string, len(responses))
	for _, r := range responses {
		answers[r.QuestionID] = strings.ToUpper(strings.TrimSpace(r.UserResponse))
	}

	details := make([]Detail, 0, len(questions))
	correct := 0
	for _, q := range questions {
		userAns := answers[q.ID]
		isCorrect := userAns != "" && userAns == strings.ToUpper(q.Correct)
		if isCorrect {
			correct++
		}
		details = append(details, Detail{
			QuestionID:    q.ID,
			CorrectAnswer: q.Correct,
			UserAnswer:    userAns,
			IsCorrect:     isCorrect,
		})
	}

	total := len(questions)
	if total < 1 {
		total = 1
	}
	score := int(math.Round(float64(correct) / float64(total) * 100))

	return EvaluationResult{
		Details:     details,
		Score:       score,
		Suggestions: buildSuggestions(details),
	}
}

// buildSuggestions returns exactly two study suggestions. The remediation
// topic is recovered from the first wrong question's id, which leads with the
// subject name.
func buildSuggestions(details []Detail) []string {
	var wrong []Detail
	for _, d := range details {
		if !d.IsCorrect {
			wrong = append(wrong, d)
		}
	}
	if len(wrong) == 0 {
		return []string{
			"Great job! Consider trying a harder quiz next.",
			"Keep practicing to maintain your performance.",
		}
	}
	topic := "topic"
	if parts := strings.Split(wrong[0].QuestionID, "-"); parts[0] != "" {
		topic = parts[0]
	}
	return []string{
		fmt.Sprintf("Review the fundamentals around %s. Identify why the correct answer fits.", topic),
		"Practice with 3-5 similar questions and check each step carefully.",
	}
}
