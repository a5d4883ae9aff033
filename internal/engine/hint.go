package engine

import "strings"

// HeuristicHint returns a deterministic hint for a question prompt without
// revealing the answer. It is the fallback when no AI provider is configured
// or the provider fails.
func HeuristicHint(prompt string) string {
	lower := strings.ToLower(prompt)
	if strings.Contains(lower, " + ") {
		return "Break the expression into parts and add step by step."
	}
	if strings.Contains(lower, "derivative") {
		return "Recall power rule: d/dx of x^n = n * x^(n-1)."
	}
	return "Focus on the key terms in the question and eliminate unlikely options."
}
