package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Option is one multiple-choice entry. Label is A-D; display order is the
// post-shuffle insertion order.
type Option struct {
	Label string `json:"id"`
	Text  string `json:"text"`
}

// Question is the unit the engine synthesizes. ID encodes
// subject-difficulty-sequence and is unique within one generation call.
type Question struct {
	ID         string   `json:"id"`
	Prompt     string   `json:"prompt"`
	Options    []Option `json:"options"`
	Correct    string   `json:"correct"`
	Difficulty string   `json:"difficulty"`
}

// DifficultyProfile maps difficulty level to question count.
type DifficultyProfile struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

func (p DifficultyProfile) Total() int { return p.Easy + p.Medium + p.Hard }

type Quiz struct {
	ID                uuid.UUID       `json:"id"`
	UserID            uuid.UUID       `json:"user_id"`
	Subject           string          `json:"subject"`
	Grade             int             `json:"grade"`
	Stream            *string         `json:"stream,omitempty"`
	QuestionsJSON     json.RawMessage `json:"questions"`
	DifficultyProfile json.RawMessage `json:"difficulty_profile"`
	CreatedAt         time.Time       `json:"created_at"`
}

type Submission struct {
	ID             uuid.UUID       `json:"id"`
	QuizID         uuid.UUID       `json:"quiz_id"`
	UserID         uuid.UUID       `json:"user_id"`
	AnswersJSON    json.RawMessage `json:"answers"`
	EvaluationJSON json.RawMessage `json:"evaluation"`
	Score          int             `json:"score"`
	CreatedAt      time.Time       `json:"created_at"`
}

// HistoryRow is a submission joined with its quiz metadata.
type HistoryRow struct {
	Submission
	Subject string  `json:"subject"`
	Grade   int     `json:"grade"`
	Stream  *string `json:"stream,omitempty"`
}

type Performance struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Subject         string    `json:"subject"`
	Grade           int       `json:"grade"`
	RollingAccuracy float64   `json:"rolling_accuracy"`
	Attempts        int       `json:"attempts"`
	LastUpdated     time.Time `json:"last_updated"`
}

type LeaderboardRow struct {
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	Subject   string    `json:"subject"`
	Grade     int       `json:"grade"`
	CreatedAt time.Time `json:"created_at"`
}

// Request payloads.

type GenerateQuizRequest struct {
	Grade          int    `json:"grade"`
	Subject        string `json:"subject"`
	TotalQuestions int    `json:"total_questions"`
	Difficulty     string `json:"difficulty"`
	Stream         string `json:"stream,omitempty"`
}

type AnswerResponse struct {
	QuestionID   string `json:"question_id"`
	UserResponse string `json:"user_response"`
}

type SubmitQuizRequest struct {
	QuizID    uuid.UUID        `json:"quiz_id"`
	Responses []AnswerResponse `json:"responses"`
}

type RetryQuizRequest struct {
	Responses []AnswerResponse `json:"responses"`
}

type HintRequest struct {
	QuestionID string `json:"question_id"`
}

type SendResultRequest struct {
	To string `json:"to,omitempty"`
}

// ReceiptJob is what the submission path pushes onto the email queue.
type ReceiptJob struct {
	UserID       uuid.UUID `json:"user_id"`
	QuizID       uuid.UUID `json:"quiz_id"`
	SubmissionID uuid.UUID `json:"submission_id"`
	To           string    `json:"to"`
	Subject      string    `json:"subject"`
	Grade        int       `json:"grade"`
	Score        int       `json:"score"`
}
