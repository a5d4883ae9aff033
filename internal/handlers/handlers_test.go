package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizzer-backend/internal/models"
	"quizzer-backend/internal/services"
)

func TestHandleServiceError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", &services.ValidationError{Fields: map[string]string{"grade": "bad"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", &services.NotFoundError{Message: "Quiz not found"}, http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", &services.UnauthorizedError{Message: "Invalid credentials"}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"conflict", &services.ConflictError{Message: "duplicate"}, http.StatusConflict, "CONFLICT"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Request-ID", "req-123")
			rr := httptest.NewRecorder()

			handleServiceError(rr, req, tc.err)

			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}

			var body models.ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if body.Error.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", body.Error.Code, tc.wantCode)
			}
			if body.Error.RequestID != "req-123" {
				t.Errorf("request id = %q, want req-123", body.Error.RequestID)
			}
		})
	}
}

func TestHandleServiceError_ValidationFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()

	handleServiceError(rr, req, &services.ValidationError{Fields: map[string]string{
		"subject": "Subject is required",
	}})

	var body models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Fields["subject"] != "Subject is required" {
		t.Errorf("fields = %v", body.Error.Fields)
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusCreated, map[string]string{"hello": "world"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type = %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["hello"] != "world" {
		t.Errorf("body = %v", body)
	}
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		value    string
		fallback int
		want     int
	}{
		{"", 10, 10},
		{"5", 10, 5},
		{"abc", 10, 10},
		{"-3", 10, -3},
	}
	for _, tc := range tests {
		if got := parseIntParam(tc.value, tc.fallback); got != tc.want {
			t.Errorf("parseIntParam(%q, %d) = %d, want %d", tc.value, tc.fallback, got, tc.want)
		}
	}
}

func TestParseDateParam(t *testing.T) {
	t.Run("iso date", func(t *testing.T) {
		got, err := parseDateParam("2026-03-15", false)
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("dd/mm/yyyy", func(t *testing.T) {
		got, err := parseDateParam("15/03/2026", false)
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("range end extends to end of day", func(t *testing.T) {
		got, err := parseDateParam("2026-03-15", true)
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("rfc3339 passes through", func(t *testing.T) {
		got, err := parseDateParam("2026-03-15T10:30:00Z", true)
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("timestamps should not be extended, got %v", got)
		}
	})

	t.Run("garbage rejected", func(t *testing.T) {
		if _, err := parseDateParam("next tuesday", false); err == nil {
			t.Error("expected an error")
		}
	})
}
