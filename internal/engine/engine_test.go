package engine

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	"quizzer-backend/internal/cache"
	"quizzer-backend/internal/curriculum"
	"quizzer-backend/internal/models"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 7))
}

func assertWellFormed(t *testing.T, q models.Question) {
	t.Helper()
	if q.Prompt == "" {
		t.Error("empty prompt")
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	seen := map[string]bool{}
	for i, opt := range q.Options {
		if opt.Label != optionLabels[i] {
			t.Errorf("option %d labelled %q, want %q", i, opt.Label, optionLabels[i])
		}
		if opt.Text == "" {
			t.Errorf("option %s has empty text", opt.Label)
		}
		seen[opt.Label] = true
	}
	if !seen[q.Correct] {
		t.Errorf("correct label %q not among options", q.Correct)
	}
}

func TestSynthesize_Mathematics(t *testing.T) {
	rng := newTestRand()
	for seed := 0; seed < 50; seed++ {
		q := Synthesize("Mathematics", "easy", 6, seed, rng)
		assertWellFormed(t, q)

		a := 2 + ((seed * 3) % 13)
		b := 1 + ((seed * 5) % 11)
		var correctText string
		for _, opt := range q.Options {
			if opt.Label == q.Correct {
				correctText = opt.Text
			}
		}
		got, err := strconv.Atoi(correctText)
		if err != nil {
			t.Fatalf("seed %d: correct option %q is not numeric", seed, correctText)
		}
		if got != a+b {
			t.Errorf("seed %d: correct option %q, want %d", seed, correctText, a+b)
		}
	}
}

func TestSynthesize_PromptDeterministicPerSeed(t *testing.T) {
	for _, subject := range []string{"Mathematics", "Science", "English", "Astronomy"} {
		for seed := 0; seed < 12; seed++ {
			a := Synthesize(subject, "medium", 8, seed, newTestRand())
			b := Synthesize(subject, "medium", 8, seed, newTestRand())
			if a.Prompt != b.Prompt {
				t.Errorf("%s seed %d: prompts differ: %q vs %q", subject, seed, a.Prompt, b.Prompt)
			}
		}
	}
}

func TestSynthesize_IncreasingSeedsNeverRepeatPrompts(t *testing.T) {
	rng := newTestRand()
	for _, subject := range []string{"Science", "English", "Gujarati", "Astronomy"} {
		seen := map[string]int{}
		for seed := 0; seed < 40; seed++ {
			q := Synthesize(subject, "easy", 7, seed, rng)
			if prev, dup := seen[q.Prompt]; dup {
				t.Fatalf("%s: seeds %d and %d produced the same prompt %q", subject, prev, seed, q.Prompt)
			}
			seen[q.Prompt] = seed
		}
	}
}

func TestSynthesize_GenericFallback(t *testing.T) {
	q := Synthesize("Astronomy", "", 9, 0, newTestRand())
	assertWellFormed(t, q)
	if q.Prompt != "What is the main topic in Astronomy?" {
		t.Errorf("unexpected fallback prompt %q", q.Prompt)
	}
	if q.Difficulty != "easy" {
		t.Errorf("empty difficulty should default to easy, got %q", q.Difficulty)
	}
}

func TestSynthesize_ScienceCyclesConcepts(t *testing.T) {
	rng := newTestRand()
	q0 := Synthesize("Science", "easy", 6, 0, rng)
	q8 := Synthesize("Science", "easy", 6, 8, rng)
	if !strings.Contains(q0.Prompt, "Photosynthesis") {
		t.Errorf("seed 0 should use the first concept, got %q", q0.Prompt)
	}
	if !strings.Contains(q8.Prompt, "practice set") {
		t.Errorf("wrapped seed should carry a cycle marker, got %q", q8.Prompt)
	}
}

func TestSelectDistribution(t *testing.T) {
	tests := []struct {
		name     string
		bucket   string
		explicit string
		count    int
		want     models.DifficultyProfile
	}{
		{"explicit easy", BucketHigh, "EASY", 8, models.DifficultyProfile{Easy: 8}},
		{"explicit medium lowercase", BucketLow, "medium", 5, models.DifficultyProfile{Medium: 5}},
		{"explicit hard", BucketNew, "HARD", 3, models.DifficultyProfile{Hard: 3}},
		{"high bucket", BucketHigh, "", 5, models.DifficultyProfile{Easy: 1, Medium: 3, Hard: 1}},
		{"low bucket", BucketLow, "", 5, models.DifficultyProfile{Easy: 3, Medium: 2, Hard: 0}},
		{"mid bucket", BucketMid, "", 5, models.DifficultyProfile{Easy: 2, Medium: 2, Hard: 1}},
		{"new bucket", BucketNew, "", 5, models.DifficultyProfile{Easy: 2, Medium: 2, Hard: 1}},
		{"unknown bucket falls back to new", "weird", "", 5, models.DifficultyProfile{Easy: 2, Medium: 2, Hard: 1}},
		{"MIX is not an override", BucketHigh, "MIX", 5, models.DifficultyProfile{Easy: 1, Medium: 3, Hard: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectDistribution(tt.bucket, tt.explicit, tt.count)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBucketForAccuracy(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     string
	}{
		{100, BucketHigh},
		{75, BucketHigh},
		{74.9, BucketMid},
		{41, BucketMid},
		{40, BucketLow},
		{0, BucketLow},
	}
	for _, tt := range tests {
		if got := BucketForAccuracy(tt.accuracy); got != tt.want {
			t.Errorf("BucketForAccuracy(%v) = %q, want %q", tt.accuracy, got, tt.want)
		}
	}
}

func TestAssemble_ExactCountAndUniquePrompts(t *testing.T) {
	mem := cache.NewMemoryCache()
	defer mem.Stop()
	a := NewAssembler(mem, 10*time.Minute)
	for _, count := range []int{1, 5, 12, 20} {
		result := a.assemble(AssembleParams{
			Subject: "Science",
			Grade:   6,
			Bucket:  BucketMid,
			Count:   count,
		}, 99)
		if len(result.Questions) != count {
			t.Fatalf("count %d: got %d questions", count, len(result.Questions))
		}
		prompts := map[string]bool{}
		for _, q := range result.Questions {
			if prompts[q.Prompt] {
				t.Errorf("count %d: duplicate prompt %q", count, q.Prompt)
			}
			prompts[q.Prompt] = true
			assertWellFormed(t, q)
			if q.ID == "" {
				t.Error("question missing id")
			}
			if !strings.HasPrefix(q.ID, "Science-") {
				t.Errorf("question id %q should lead with the subject", q.ID)
			}
		}
	}
}

func TestAssemble_MidBucketFiveQuestionProfile(t *testing.T) {
	mem := cache.NewMemoryCache()
	defer mem.Stop()
	a := NewAssembler(mem, 10*time.Minute)
	result := a.assemble(AssembleParams{
		Subject: "Mathematics",
		Grade:   6,
		Bucket:  BucketMid,
		Count:   5,
	}, 7)
	if result.DifficultyProfile != (models.DifficultyProfile{Easy: 2, Medium: 2, Hard: 1}) {
		t.Fatalf("unexpected profile %+v", result.DifficultyProfile)
	}
	byDiff := map[string]int{}
	for _, q := range result.Questions {
		byDiff[q.Difficulty]++
	}
	if byDiff["easy"] != 2 || byDiff["medium"] != 2 || byDiff["hard"] != 1 {
		t.Errorf("difficulty spread %v does not match profile", byDiff)
	}
}

func TestAssemble_InvalidSubject(t *testing.T) {
	mem := cache.NewMemoryCache()
	defer mem.Stop()
	a := NewAssembler(mem, 10*time.Minute)
	_, err := a.Assemble(context.Background(), AssembleParams{
		Subject: "Physics",
		Grade:   6,
		Bucket:  BucketNew,
		Count:   5,
	})
	if !errors.Is(err, curriculum.ErrInvalidSubject) {
		t.Fatalf("expected ErrInvalidSubject, got %v", err)
	}
}

func TestAssemble_StreamRequired(t *testing.T) {
	mem := cache.NewMemoryCache()
	defer mem.Stop()
	a := NewAssembler(mem, 10*time.Minute)
	_, err := a.Assemble(context.Background(), AssembleParams{
		Subject: "Physics",
		Grade:   11,
		Bucket:  BucketNew,
		Count:   5,
	})
	if !errors.Is(err, curriculum.ErrStreamRequired) {
		t.Fatalf("expected ErrStreamRequired, got %v", err)
	}
}

func TestAssemble_CacheHitSkipsValidation(t *testing.T) {
	mem := cache.NewMemoryCache()
	defer mem.Stop()
	a := NewAssembler(mem, 10*time.Minute)
	params := AssembleParams{Subject: "Physics", Grade: 6, Bucket: BucketNew, Count: 5}

	canned := Assembly{
		Questions:         []models.Question{{ID: "Physics-easy-0-abc123", Prompt: "cached", Correct: "A"}},
		DifficultyProfile: models.DifficultyProfile{Easy: 5},
	}
	raw, err := json.Marshal(canned)
	if err != nil {
		t.Fatal(err)
	}
	mem.Set(context.Background(), cacheKey(params), raw, time.Minute)

	got, err := a.Assemble(context.Background(), params)
	if err != nil {
		t.Fatalf("cached assembly should bypass validation, got %v", err)
	}
	if len(got.Questions) != 1 || got.Questions[0].Prompt != "cached" {
		t.Errorf("expected the cached assembly back, got %+v", got)
	}
}

func TestAssemble_CachesResult(t *testing.T) {
	mem := cache.NewMemoryCache()
	defer mem.Stop()
	a := NewAssembler(mem, 10*time.Minute)
	params := AssembleParams{Subject: "Science", Grade: 6, Bucket: BucketMid, Count: 5}

	first, err := a.Assemble(context.Background(), params)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Assemble(context.Background(), params)
	if err != nil {
		t.Fatal(err)
	}
	if first.Questions[0].ID != second.Questions[0].ID {
		t.Error("second assembly should be served from cache")
	}
}

func TestEvaluate(t *testing.T) {
	questions := []models.Question{
		{ID: "Mathematics-easy-0-aaaaaa", Correct: "B"},
		{ID: "Mathematics-easy-1-bbbbbb", Correct: "C"},
		{ID: "Mathematics-medium-2-cccccc", Correct: "A"},
		{ID: "Mathematics-medium-3-dddddd", Correct: "D"},
		{ID: "Mathematics-hard-4-eeeeee", Correct: "A"},
	}
	responses := []models.AnswerResponse{
		{QuestionID: "Mathematics-easy-0-aaaaaa", UserResponse: " b "},
		{QuestionID: "Mathematics-easy-1-bbbbbb", UserResponse: "a"},
		{QuestionID: "Mathematics-medium-2-cccccc", UserResponse: ""},
		{QuestionID: "unknown-question", UserResponse: "A"},
	}

	result := Evaluate(questions, responses)
	if result.Score != 20 {
		t.Fatalf("score = %d, want 20", result.Score)
	}
	if len(result.Details) != 5 {
		t.Fatalf("details for %d questions, want 5", len(result.Details))
	}
	if !result.Details[0].IsCorrect {
		t.Error("trimmed and uppercased answer should match")
	}
	if result.Details[2].IsCorrect || result.Details[4].IsCorrect {
		t.Error("blank and missing answers must count as wrong")
	}
	if result.Details[0].UserAnswer != "B" {
		t.Errorf("user answer not normalized: %q", result.Details[0].UserAnswer)
	}
	if len(result.Suggestions) != 2 {
		t.Fatalf("want 2 suggestions, got %d", len(result.Suggestions))
	}
	if !strings.Contains(result.Suggestions[0], "Mathematics") {
		t.Errorf("remediation should name the subject, got %q", result.Suggestions[0])
	}

	again := Evaluate(questions, responses)
	if again.Score != result.Score {
		t.Error("evaluation must be idempotent")
	}
}

func TestEvaluate_AllCorrect(t *testing.T) {
	questions := []models.Question{
		{ID: "Science-easy-0-aaaaaa", Correct: "A"},
		{ID: "Science-easy-1-bbbbbb", Correct: "B"},
	}
	responses := []models.AnswerResponse{
		{QuestionID: "Science-easy-0-aaaaaa", UserResponse: "A"},
		{QuestionID: "Science-easy-1-bbbbbb", UserResponse: "B"},
	}
	result := Evaluate(questions, responses)
	if result.Score != 100 {
		t.Fatalf("score = %d, want 100", result.Score)
	}
	if !strings.Contains(result.Suggestions[0], "Great job") {
		t.Errorf("perfect score should encourage, got %q", result.Suggestions[0])
	}
}

func TestEvaluate_EmptyQuestionSet(t *testing.T) {
	result := Evaluate(nil, nil)
	if result.Score != 0 {
		t.Errorf("empty quiz should score 0, got %d", result.Score)
	}
}

func TestHeuristicHint(t *testing.T) {
	tests := []struct {
		prompt string
		want   string
	}{
		{"7 + 9 = ?", "Break the expression into parts and add step by step."},
		{"Find the DERIVATIVE of x^3", "Recall power rule: d/dx of x^n = n * x^(n-1)."},
		{"What is the capital of Gujarat?", "Focus on the key terms in the question and eliminate unlikely options."},
	}
	for _, tt := range tests {
		if got := HeuristicHint(tt.prompt); got != tt.want {
			t.Errorf("HeuristicHint(%q) = %q, want %q", tt.prompt, got, tt.want)
		}
	}
}
