package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"quizzer-backend/internal/models"
	"quizzer-backend/internal/repository"
)

func TestValidateResponses(t *testing.T) {
	tests := []struct {
		name      string
		responses []models.AnswerResponse
		wantErr   bool
	}{
		{"empty", nil, true},
		{"valid single", []models.AnswerResponse{{QuestionID: "q1", UserResponse: "A"}}, false},
		{"valid all labels", []models.AnswerResponse{
			{QuestionID: "q1", UserResponse: "A"},
			{QuestionID: "q2", UserResponse: "B"},
			{QuestionID: "q3", UserResponse: "C"},
			{QuestionID: "q4", UserResponse: "D"},
		}, false},
		{"lowercase rejected", []models.AnswerResponse{{QuestionID: "q1", UserResponse: "a"}}, true},
		{"out of range label", []models.AnswerResponse{{QuestionID: "q1", UserResponse: "E"}}, true},
		{"missing question id", []models.AnswerResponse{{UserResponse: "A"}}, true},
		{"empty response", []models.AnswerResponse{{QuestionID: "q1"}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponses(tc.responses)
			if tc.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tc.wantErr {
				if _, ok := err.(*ValidationError); !ok {
					t.Errorf("expected *ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestAuthService_LoginValidation(t *testing.T) {
	// Validation failures short-circuit before any repository access.
	s := NewAuthService(nil, nil)

	tests := []struct {
		name string
		req  models.LoginRequest
	}{
		{"short username", models.LoginRequest{Username: "a", Password: "secret"}},
		{"short password", models.LoginRequest{Username: "student1", Password: "x"}},
		{"both empty", models.LoginRequest{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Login(context.Background(), tc.req)
			if _, ok := err.(*ValidationError); !ok {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
		})
	}
}

func TestHintService_HeuristicWithoutProvider(t *testing.T) {
	s, err := NewHintService("", 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	hint := s.Hint(context.Background(), models.Question{Prompt: "4 + 9 = ?"}, "Mathematics", 6)
	if hint != "Break the expression into parts and add step by step." {
		t.Errorf("unexpected hint %q", hint)
	}

	hint = s.Hint(context.Background(), models.Question{Prompt: "What is the capital of Gujarat?"}, "Social Science", 7)
	if hint == "" {
		t.Error("hint must never be empty")
	}
}

func TestEmailService_DevMode(t *testing.T) {
	s := NewEmailService("", "587", "", "", "noreply@quizzer.app")
	if s.Enabled() {
		t.Error("missing SMTP host should put the service in dev mode")
	}

	s = NewEmailService("smtp.example.com", "587", "mailer", "secret", "noreply@quizzer.app")
	if !s.Enabled() {
		t.Error("full SMTP config should enable delivery")
	}
}

// ──── Quiz service fakes ────

type stubQuizStore struct {
	quiz *models.Quiz
}

func (s *stubQuizStore) Create(_ context.Context, quiz *models.Quiz) error { return nil }

func (s *stubQuizStore) GetByID(_ context.Context, id uuid.UUID) (*models.Quiz, error) {
	return s.quiz, nil
}

type stubSubmissionStore struct {
	created *models.Submission
}

func (s *stubSubmissionStore) Create(_ context.Context, sub *models.Submission) error {
	sub.ID = uuid.New()
	s.created = sub
	return nil
}

func (s *stubSubmissionStore) LatestForQuiz(_ context.Context, _ uuid.UUID) (*models.Submission, error) {
	if s.created == nil {
		return nil, pgx.ErrNoRows
	}
	return s.created, nil
}

func (s *stubSubmissionStore) FilterForUser(_ context.Context, _ uuid.UUID, _ repository.SubmissionFilter) ([]models.HistoryRow, int, error) {
	return nil, 0, nil
}

type stubPerformanceStore struct {
	recordErr error
}

func (s *stubPerformanceStore) Get(_ context.Context, _ uuid.UUID, _ string, _ int) (*models.Performance, error) {
	return nil, pgx.ErrNoRows
}

func (s *stubPerformanceStore) RecordScore(_ context.Context, _ uuid.UUID, _ string, _, _ int) error {
	return s.recordErr
}

type stubUserStore struct {
	user *models.User
}

func (s *stubUserStore) GetByID(_ context.Context, _ uuid.UUID) (*models.User, error) {
	return s.user, nil
}

type failingQueue struct{}

func (failingQueue) Push(_ context.Context, _ []byte) error {
	return errors.New("dial tcp 127.0.0.1:6379: connection refused")
}

type recordingQueue struct {
	payloads [][]byte
}

func (q *recordingQueue) Push(_ context.Context, payload []byte) error {
	q.payloads = append(q.payloads, payload)
	return nil
}

func submitFixture(t *testing.T, userID uuid.UUID) *models.Quiz {
	t.Helper()
	questions := []models.Question{
		{ID: "Science-easy-0-000001", Prompt: "q1", Correct: "A", Difficulty: "easy"},
		{ID: "Science-easy-1-000002", Prompt: "q2", Correct: "B", Difficulty: "easy"},
	}
	raw, err := json.Marshal(questions)
	if err != nil {
		t.Fatal(err)
	}
	return &models.Quiz{
		ID:            uuid.New(),
		UserID:        userID,
		Subject:       "Science",
		Grade:         6,
		QuestionsJSON: raw,
	}
}

func TestSubmit_QueueFailureDoesNotFailSubmission(t *testing.T) {
	userID := uuid.New()
	quiz := submitFixture(t, userID)
	subs := &stubSubmissionStore{}

	s := &QuizService{
		quizRepo: &stubQuizStore{quiz: quiz},
		subRepo:  subs,
		perfRepo: &stubPerformanceStore{recordErr: errors.New("performance table unavailable")},
		userRepo: &stubUserStore{user: &models.User{ID: userID, Username: "student@example.com"}},
		queue:    failingQueue{},
	}

	result, err := s.Submit(context.Background(), userID, quiz.ID, []models.AnswerResponse{
		{QuestionID: "Science-easy-0-000001", UserResponse: "A"},
		{QuestionID: "Science-easy-1-000002", UserResponse: "C"},
	})
	if err != nil {
		t.Fatalf("queue failure must not surface from Submit: %v", err)
	}
	if result.Score != 50 {
		t.Errorf("score = %d, want 50", result.Score)
	}
	if result.SubmissionID == uuid.Nil {
		t.Error("submission id not set")
	}
	if subs.created == nil {
		t.Fatal("submission was not persisted")
	}
}

func TestSubmit_QueuesReceiptForEmailUsername(t *testing.T) {
	userID := uuid.New()
	quiz := submitFixture(t, userID)
	queue := &recordingQueue{}

	s := &QuizService{
		quizRepo: &stubQuizStore{quiz: quiz},
		subRepo:  &stubSubmissionStore{},
		perfRepo: &stubPerformanceStore{},
		userRepo: &stubUserStore{user: &models.User{ID: userID, Username: "student@example.com"}},
		queue:    queue,
	}

	if _, err := s.Submit(context.Background(), userID, quiz.ID, []models.AnswerResponse{
		{QuestionID: "Science-easy-0-000001", UserResponse: "A"},
		{QuestionID: "Science-easy-1-000002", UserResponse: "B"},
	}); err != nil {
		t.Fatal(err)
	}

	if len(queue.payloads) != 1 {
		t.Fatalf("expected one queued receipt, got %d", len(queue.payloads))
	}
	var job models.ReceiptJob
	if err := json.Unmarshal(queue.payloads[0], &job); err != nil {
		t.Fatal(err)
	}
	if job.To != "student@example.com" {
		t.Errorf("recipient = %q, want the email-like username", job.To)
	}
	if job.Score != 100 {
		t.Errorf("score = %d, want 100", job.Score)
	}
}

func TestSubmit_NoReceiptForPlainUsername(t *testing.T) {
	userID := uuid.New()
	quiz := submitFixture(t, userID)
	queue := &recordingQueue{}

	s := &QuizService{
		quizRepo: &stubQuizStore{quiz: quiz},
		subRepo:  &stubSubmissionStore{},
		perfRepo: &stubPerformanceStore{},
		userRepo: &stubUserStore{user: &models.User{ID: userID, Username: "student1"}},
		queue:    queue,
	}

	if _, err := s.Submit(context.Background(), userID, quiz.ID, []models.AnswerResponse{
		{QuestionID: "Science-easy-0-000001", UserResponse: "A"},
		{QuestionID: "Science-easy-1-000002", UserResponse: "B"},
	}); err != nil {
		t.Fatal(err)
	}

	if len(queue.payloads) != 0 {
		t.Errorf("expected no queued receipt for a plain username, got %d", len(queue.payloads))
	}
}
