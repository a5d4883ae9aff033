package handlers

import (
	"net/http"

	"quizzer-backend/internal/services"
)

// ConfigHandler exposes the non-sensitive parts of the server configuration
// so clients can adapt their UI (e.g. hide the email receipt button).
type ConfigHandler struct {
	email *services.EmailService
}

func NewConfigHandler(email *services.EmailService) *ConfigHandler {
	return &ConfigHandler{email: email}
}

func (h *ConfigHandler) Public(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"email_enabled": h.email.Enabled(),
	})
}
