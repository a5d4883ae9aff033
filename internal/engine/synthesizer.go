package engine

import (
	"fmt"
	"math/rand/v2"

	"quizzer-backend/internal/models"
)

var optionLabels = [4]string{"A", "B", "C", "D"}

var scienceConcepts = []string{
	"Photosynthesis", "Gravity", "Water Cycle", "Solar System",
	"Human Body", "Plants", "Animals", "Weather",
}

var scienceTemplates = []string{
	"What is the main function of %s?",
	"Which of the following is related to %s?",
	"How does %s work?",
	"What are the characteristics of %s?",
}

// Synthesize produces a single multiple-choice question for the given
// subject, deterministically derived from seed. Option placement is shuffled
// with rng, so the prompt is seed-repeatable while the correct label is not.
// It never fails: subjects without a dedicated generator or bank entry get a
// generic templated question.
func Synthesize(subject, difficulty string, grade, seed int, rng *rand.Rand) models.Question {
	if difficulty == "" {
		difficulty = "easy"
	}
	switch subject {
	case "Mathematics":
		return synthesizeArithmetic(difficulty, seed, rng)
	case "Science":
		return synthesizeScience(difficulty, seed, rng)
	}

	bank, ok := questionBank[subject]
	if ok {
		entry := bank[seed%len(bank)]
		prompt := cyclePrompt(entry.Prompt, seed, len(bank))
		return buildQuestion(prompt, entry.Options[:], difficulty, rng)
	}

	prompt := cyclePrompt(fmt.Sprintf("What is the main topic in %s?", subject), seed, 1)
	return buildQuestion(prompt, []string{"Option A", "Option B", "Option C", "Option D"}, difficulty, rng)
}

func synthesizeArithmetic(difficulty string, seed int, rng *rand.Rand) models.Question {
	a := 2 + ((seed * 3) % 13)
	b := 1 + ((seed * 5) % 11)
	answer := a + b
	texts := []string{
		fmt.Sprintf("%d", answer),
		fmt.Sprintf("%d", answer-1),
		fmt.Sprintf("%d", answer+1),
		fmt.Sprintf("%d", answer+2),
	}
	return buildQuestion(fmt.Sprintf("%d + %d = ?", a, b), texts, difficulty, rng)
}

func synthesizeScience(difficulty string, seed int, rng *rand.Rand) models.Question {
	concept := scienceConcepts[seed%len(scienceConcepts)]
	prompt := fmt.Sprintf(scienceTemplates[seed%len(scienceTemplates)], concept)
	// Concept and template lists share a common divisor of 4, so the prompt
	// space is only len(concepts) wide before it repeats.
	prompt = cyclePrompt(prompt, seed, len(scienceConcepts))
	texts := []string{
		fmt.Sprintf("Key idea about %s", concept),
		fmt.Sprintf("Alternative detail about %s", concept),
		"Unrelated statement",
		"Another unrelated statement",
	}
	return buildQuestion(prompt, texts, difficulty, rng)
}

// cyclePrompt disambiguates prompts once seed wraps around the variety of a
// generator, so strictly increasing seeds always yield fresh prompts and
// dedup loops in the assembler terminate.
func cyclePrompt(prompt string, seed, variety int) string {
	cycle := seed / variety
	if cycle == 0 {
		return prompt
	}
	return fmt.Sprintf("%s (practice set %d)", prompt, cycle+1)
}

// buildQuestion pads the candidate texts to exactly 4, shuffles placement,
// and assigns labels. texts[0] is the correct answer.
func buildQuestion(prompt string, texts []string, difficulty string, rng *rand.Rand) models.Question {
	correct := texts[0]
	candidates := make([]string, len(texts))
	copy(candidates, texts)
	for len(candidates) < 4 {
		candidates = append(candidates, fmt.Sprintf("Option %d", len(candidates)+1))
	}
	candidates = candidates[:4]

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	options := make([]models.Option, 4)
	correctLabel := optionLabels[0]
	for i, text := range candidates {
		options[i] = models.Option{Label: optionLabels[i], Text: text}
		if text == correct {
			correctLabel = optionLabels[i]
		}
	}
	return models.Question{
		Prompt:     prompt,
		Options:    options,
		Correct:    correctLabel,
		Difficulty: difficulty,
	}
}
