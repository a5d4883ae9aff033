package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"quizzer-backend/internal/curriculum"
	"quizzer-backend/internal/engine"
	"quizzer-backend/internal/models"
	"quizzer-backend/internal/repository"
)

const ReceiptQueue = "queue:email-receipts"

const (
	defaultQuestionCount = 5
	maxQuestionCount     = 20
)

var emailLikeRegex = regexp.MustCompile(`.+@.+\..+`)

// The store interfaces cover exactly what the service touches, mirroring the
// assembler's cache seam, so tests can stand in for the pgx-backed
// repositories.
type quizStore interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Quiz, error)
}

type submissionStore interface {
	Create(ctx context.Context, sub *models.Submission) error
	LatestForQuiz(ctx context.Context, quizID uuid.UUID) (*models.Submission, error)
	FilterForUser(ctx context.Context, userID uuid.UUID, f repository.SubmissionFilter) ([]models.HistoryRow, int, error)
}

type performanceStore interface {
	Get(ctx context.Context, userID uuid.UUID, subject string, grade int) (*models.Performance, error)
	RecordScore(ctx context.Context, userID uuid.UUID, subject string, grade, score int) error
}

type userStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// ReceiptQueuer pushes encoded receipt jobs for the email worker pool.
type ReceiptQueuer interface {
	Push(ctx context.Context, payload []byte) error
}

// RedisReceiptQueue queues receipt jobs on the list the workers drain.
type RedisReceiptQueue struct {
	client *redis.Client
}

func NewRedisReceiptQueue(client *redis.Client) *RedisReceiptQueue {
	return &RedisReceiptQueue{client: client}
}

func (q *RedisReceiptQueue) Push(ctx context.Context, payload []byte) error {
	return q.client.LPush(ctx, ReceiptQueue, payload).Err()
}

type QuizService struct {
	quizRepo  quizStore
	subRepo   submissionStore
	perfRepo  performanceStore
	userRepo  userStore
	assembler *engine.Assembler
	hints     *HintService
	queue     ReceiptQueuer
}

func NewQuizService(
	quizRepo *repository.QuizRepo,
	subRepo *repository.SubmissionRepo,
	perfRepo *repository.PerformanceRepo,
	userRepo *repository.UserRepo,
	assembler *engine.Assembler,
	hints *HintService,
	queue ReceiptQueuer,
) *QuizService {
	return &QuizService{
		quizRepo:  quizRepo,
		subRepo:   subRepo,
		perfRepo:  perfRepo,
		userRepo:  userRepo,
		assembler: assembler,
		hints:     hints,
		queue:     queue,
	}
}

// GeneratedQuiz is the outcome of Generate: the stored quiz plus its decoded
// question set.
type GeneratedQuiz struct {
	Quiz              *models.Quiz
	Questions         []models.Question
	DifficultyProfile models.DifficultyProfile
}

// SubmitResult is the outcome of scoring one submission.
type SubmitResult struct {
	SubmissionID uuid.UUID
	Score        int
	Suggestions  []string
}

// Generate builds a quiz tuned to the user's performance bucket for the
// subject and grade, persists it, and returns it with questions decoded.
func (s *QuizService) Generate(ctx context.Context, userID uuid.UUID, req models.GenerateQuizRequest) (*GeneratedQuiz, error) {
	fieldErrors := make(map[string]string)
	if req.Grade < 1 || req.Grade > 12 {
		fieldErrors["grade"] = "Grade must be between 1 and 12"
	}
	if req.Subject == "" {
		fieldErrors["subject"] = "Subject is required"
	}
	count := req.TotalQuestions
	if count == 0 {
		count = defaultQuestionCount
	}
	if count < 1 || count > maxQuestionCount {
		fieldErrors["total_questions"] = fmt.Sprintf("Total questions must be between 1 and %d", maxQuestionCount)
	}
	switch req.Difficulty {
	case "", "EASY", "MEDIUM", "HARD":
	default:
		fieldErrors["difficulty"] = "Difficulty must be EASY, MEDIUM or HARD"
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Fields: fieldErrors}
	}

	bucket := engine.BucketNew
	perf, err := s.perfRepo.Get(ctx, userID, req.Subject, req.Grade)
	if err == nil {
		bucket = engine.BucketForAccuracy(perf.RollingAccuracy)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	assembly, err := s.assembler.Assemble(ctx, engine.AssembleParams{
		Subject:    req.Subject,
		Grade:      req.Grade,
		Stream:     req.Stream,
		Bucket:     bucket,
		Count:      count,
		Difficulty: req.Difficulty,
	})
	if errors.Is(err, curriculum.ErrStreamRequired) {
		return nil, &ValidationError{Fields: map[string]string{
			"stream": fmt.Sprintf("Stream is required for grades 11-12. Available streams: %v", curriculum.Streams()),
		}}
	}
	if errors.Is(err, curriculum.ErrInvalidSubject) {
		return nil, &ValidationError{Fields: map[string]string{
			"subject": fmt.Sprintf("Subject %q is not available for grade %d", req.Subject, req.Grade),
		}}
	}
	if err != nil {
		return nil, err
	}

	questionsJSON, err := json.Marshal(assembly.Questions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode questions: %w", err)
	}
	profileJSON, err := json.Marshal(assembly.DifficultyProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode difficulty profile: %w", err)
	}

	var stream *string
	if req.Stream != "" {
		stream = &req.Stream
	}

	quiz := &models.Quiz{
		UserID:            userID,
		Subject:           req.Subject,
		Grade:             req.Grade,
		Stream:            stream,
		QuestionsJSON:     questionsJSON,
		DifficultyProfile: profileJSON,
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}

	return &GeneratedQuiz{
		Quiz:              quiz,
		Questions:         assembly.Questions,
		DifficultyProfile: assembly.DifficultyProfile,
	}, nil
}

// Submit scores the responses against the quiz, stores the submission, folds
// the score into the user's performance, and queues a result receipt when the
// username looks like an email address.
func (s *QuizService) Submit(ctx context.Context, userID, quizID uuid.UUID, responses []models.AnswerResponse) (*SubmitResult, error) {
	if err := validateResponses(responses); err != nil {
		return nil, err
	}

	quiz, err := s.getOwnedQuiz(ctx, userID, quizID)
	if err != nil {
		return nil, err
	}

	var questions []models.Question
	if err := json.Unmarshal(quiz.QuestionsJSON, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode quiz questions: %w", err)
	}

	evaluation := engine.Evaluate(questions, responses)

	answersJSON, err := json.Marshal(responses)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}
	detailsJSON, err := json.Marshal(evaluation.Details)
	if err != nil {
		return nil, fmt.Errorf("failed to encode evaluation: %w", err)
	}

	sub := &models.Submission{
		QuizID:         quiz.ID,
		UserID:         userID,
		AnswersJSON:    answersJSON,
		EvaluationJSON: detailsJSON,
		Score:          evaluation.Score,
	}
	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	if err := s.perfRepo.RecordScore(ctx, userID, quiz.Subject, quiz.Grade, evaluation.Score); err != nil {
		log.Printf("failed to record performance for user %s: %v", userID, err)
	}

	s.enqueueReceipt(ctx, quiz, sub, "")

	return &SubmitResult{
		SubmissionID: sub.ID,
		Score:        evaluation.Score,
		Suggestions:  evaluation.Suggestions,
	}, nil
}

// Retry is just another submission against the same quiz.
func (s *QuizService) Retry(ctx context.Context, userID, quizID uuid.UUID, responses []models.AnswerResponse) (*SubmitResult, error) {
	return s.Submit(ctx, userID, quizID, responses)
}

// HistoryParams selects and pages a user's submission history.
type HistoryParams struct {
	Filter   repository.SubmissionFilter
	Page     int
	PageSize int
}

func (s *QuizService) History(ctx context.Context, userID uuid.UUID, params HistoryParams) ([]models.HistoryRow, int, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	filter := params.Filter
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	return s.subRepo.FilterForUser(ctx, userID, filter)
}

// Hint returns a hint for one question of the user's quiz.
func (s *QuizService) Hint(ctx context.Context, userID, quizID uuid.UUID, questionID string) (string, error) {
	quiz, err := s.getOwnedQuiz(ctx, userID, quizID)
	if err != nil {
		return "", err
	}

	var questions []models.Question
	if err := json.Unmarshal(quiz.QuestionsJSON, &questions); err != nil {
		return "", fmt.Errorf("failed to decode quiz questions: %w", err)
	}

	for _, q := range questions {
		if q.ID == questionID {
			return s.hints.Hint(ctx, q, quiz.Subject, quiz.Grade), nil
		}
	}
	return "", &NotFoundError{Message: "Question not found"}
}

// SendResult queues a receipt email for the latest submission of the quiz.
// Returns false when no recipient could be determined.
func (s *QuizService) SendResult(ctx context.Context, userID, quizID uuid.UUID, to string) (bool, error) {
	quiz, err := s.getOwnedQuiz(ctx, userID, quizID)
	if err != nil {
		return false, err
	}

	sub, err := s.subRepo.LatestForQuiz(ctx, quizID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, &NotFoundError{Message: "No submission found"}
	}
	if err != nil {
		return false, err
	}

	return s.enqueueReceipt(ctx, quiz, sub, to), nil
}

// enqueueReceipt pushes a receipt job for the worker pool. Delivery is
// fire-and-forget: queue failures are logged, never surfaced to the caller.
func (s *QuizService) enqueueReceipt(ctx context.Context, quiz *models.Quiz, sub *models.Submission, to string) bool {
	recipient := to
	if recipient == "" {
		user, err := s.userRepo.GetByID(ctx, quiz.UserID)
		if err != nil {
			log.Printf("failed to load user %s for receipt: %v", quiz.UserID, err)
			return false
		}
		if emailLikeRegex.MatchString(user.Username) {
			recipient = user.Username
		}
	}
	if recipient == "" {
		return false
	}

	job := models.ReceiptJob{
		UserID:       quiz.UserID,
		QuizID:       quiz.ID,
		SubmissionID: sub.ID,
		To:           recipient,
		Subject:      quiz.Subject,
		Grade:        quiz.Grade,
		Score:        sub.Score,
	}
	jobBytes, err := json.Marshal(job)
	if err != nil {
		log.Printf("failed to encode receipt job: %v", err)
		return false
	}

	queueCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.queue.Push(queueCtx, jobBytes); err != nil {
		log.Printf("failed to queue receipt for submission %s: %v", sub.ID, err)
		return false
	}
	return true
}

func (s *QuizService) getOwnedQuiz(ctx context.Context, userID, quizID uuid.UUID) (*models.Quiz, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Message: "Quiz not found"}
	}
	if err != nil {
		return nil, err
	}
	if quiz.UserID != userID {
		return nil, &NotFoundError{Message: "Quiz not found"}
	}
	return quiz, nil
}

func validateResponses(responses []models.AnswerResponse) error {
	if len(responses) == 0 {
		return &ValidationError{Fields: map[string]string{"responses": "At least one response is required"}}
	}
	for i, r := range responses {
		if r.QuestionID == "" {
			return &ValidationError{Fields: map[string]string{
				fmt.Sprintf("responses[%d].question_id", i): "Question ID is required",
			}}
		}
		switch r.UserResponse {
		case "A", "B", "C", "D":
		default:
			return &ValidationError{Fields: map[string]string{
				fmt.Sprintf("responses[%d].user_response", i): "Response must be A, B, C or D",
			}}
		}
	}
	return nil
}
