package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"quizzer-backend/internal/handlers"
	"quizzer-backend/internal/middleware"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	quizHandler *handlers.QuizHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	configHandler *handlers.ConfigHandler,
	corsOrigin string,
	apiLimiter *middleware.RateLimiter,
	authLimiter *middleware.RateLimiter,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(corsOrigin))
	r.Use(apiLimiter.Middleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Auth Routes (public) ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/login", authHandler.Login)
		})

		// ──── Public Config ────
		r.Get("/config", configHandler.Public)

		// ──── Quiz Routes ────
		r.Route("/quizzes", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/generate", quizHandler.Generate)
			r.Post("/submit", quizHandler.Submit)
			r.Get("/history", quizHandler.History)
			r.Post("/{id}/retry", quizHandler.Retry)
			r.Post("/{id}/hint", quizHandler.Hint)
			r.Post("/{id}/send-result", quizHandler.SendResult)
		})

		// ──── Leaderboard ────
		r.Route("/leaderboard", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", leaderboardHandler.List)
		})
	})

	return r
}
