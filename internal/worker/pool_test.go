package worker

import (
	"encoding/json"
	"testing"

	"quizzer-backend/internal/models"
	"quizzer-backend/internal/services"
)

func TestRequeue_SkippedAfterStop(t *testing.T) {
	// The pool has no redis client here; requeue must bail out on the stop
	// channel before touching it.
	p := NewPool(nil, services.NewEmailService("", "", "", "", ""), 1)
	p.Stop()

	p.requeue([]byte(`{"attempts":1}`))
}

func TestReceiptEnvelope_AttemptsSurviveRequeue(t *testing.T) {
	job := receiptEnvelope{
		ReceiptJob: models.ReceiptJob{To: "student@example.com", Subject: "Science", Grade: 6, Score: 80},
		Attempts:   2,
	}
	raw, err := json.Marshal(job)
	if err != nil {
		t.Fatal(err)
	}

	var got receiptEnvelope
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if got.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", got.Attempts)
	}
	if got.To != "student@example.com" {
		t.Errorf("recipient = %q, want student@example.com", got.To)
	}
}
