package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"quizzer-backend/internal/engine"
	"quizzer-backend/internal/models"
)

// HintService produces a hint for a quiz question. With an API key it asks
// Gemini; without one, or on any provider failure, it falls back to the
// deterministic heuristics. Hint never fails.
type HintService struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewHintService(apiKey string, timeout time.Duration) (*HintService, error) {
	if apiKey == "" {
		log.Println("Hint service running without Gemini (heuristic hints only)")
		return &HintService{timeout: timeout}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-3-flash-preview")
	model.SetTemperature(0.3)

	return &HintService{client: client, model: model, timeout: timeout}, nil
}

func (s *HintService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *HintService) Hint(ctx context.Context, question models.Question, subject string, grade int) string {
	if s.model == nil {
		return engine.HeuristicHint(question.Prompt)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"A grade %d student is stuck on this %s multiple-choice question:\n\n%s\n\nGive a single short hint that points them toward the answer without revealing it. Respond with the hint sentence only.",
		grade, subject, question.Prompt,
	)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Gemini hint failed, using heuristic: %v", err)
		return engine.HeuristicHint(question.Prompt)
	}

	hint := strings.TrimSpace(extractText(resp))
	if hint == "" {
		return engine.HeuristicHint(question.Prompt)
	}
	return hint
}

func extractText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	return sb.String()
}
