package worker

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"quizzer-backend/internal/models"
	"quizzer-backend/internal/services"
)

const receiptQueue = services.ReceiptQueue

// Pool drains the email receipt queue. Receipts are best-effort: a failed
// send is re-queued with backoff up to three attempts, then dropped.
type Pool struct {
	redis       *redis.Client
	email       *services.EmailService
	workerCount int
	stopChan    chan struct{}
}

func NewPool(redisClient *redis.Client, email *services.EmailService, workerCount int) *Pool {
	return &Pool{
		redis:       redisClient,
		email:       email,
		workerCount: workerCount,
		stopChan:    make(chan struct{}),
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		go p.worker(i)
	}
	log.Printf("Started %d email worker goroutines", p.workerCount)
}

func (p *Pool) Stop() {
	close(p.stopChan)
}

func (p *Pool) worker(id int) {
	for {
		select {
		case <-p.stopChan:
			log.Printf("Email worker %d shutting down", id)
			return
		default:
		}

		ctx := context.Background()

		// BLPOP with 30s timeout
		result, err := p.redis.BLPop(ctx, 30*time.Second, receiptQueue).Result()
		if err != nil {
			continue // Timeout or error, retry
		}

		if len(result) < 2 {
			continue
		}

		var job receiptEnvelope
		if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
			log.Printf("Email worker %d: failed to parse receipt job: %v", id, err)
			continue
		}

		sendErr := p.email.SendResultReceipt(job.To, job.Subject, job.Grade, job.Score, job.SubmissionID)
		if sendErr == nil {
			continue
		}

		job.Attempts++
		if job.Attempts >= 3 {
			log.Printf("Email worker %d: dropping receipt for submission %s after %d attempts: %v",
				id, job.SubmissionID, job.Attempts, sendErr)
			continue
		}

		log.Printf("Email worker %d: receipt for submission %s failed (attempt %d): %v",
			id, job.SubmissionID, job.Attempts, sendErr)

		jobBytes, err := json.Marshal(job)
		if err != nil {
			log.Printf("Email worker %d: failed to encode receipt job: %v", id, err)
			continue
		}
		backoff := time.Duration(1<<uint(job.Attempts)) * time.Second
		time.AfterFunc(backoff, func() {
			p.requeue(jobBytes)
		})
	}
}

// requeue pushes a retry payload back on the queue unless the pool has been
// stopped in the meantime.
func (p *Pool) requeue(payload []byte) {
	select {
	case <-p.stopChan:
		return
	default:
	}

	if err := p.redis.LPush(context.Background(), receiptQueue, string(payload)).Err(); err != nil {
		log.Printf("failed to requeue receipt job: %v", err)
	}
}

// receiptEnvelope wraps the queued job with a retry counter.
type receiptEnvelope struct {
	models.ReceiptJob
	Attempts int `json:"attempts,omitempty"`
}
