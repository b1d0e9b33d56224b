package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Scheduler defines the interface for a component that schedules a payment
// for verification against the gateway.
type Scheduler interface {
	// ScheduleVerification enqueues reference to be verified after delay.
	ScheduleVerification(ctx context.Context, reference string, delay time.Duration) error
}

// VerificationJob is the message body carried by the verification queue.
type VerificationJob struct {
	Reference  string    `json:"reference"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// ParseVerificationJob decodes a queue message body.
func ParseVerificationJob(body string) (*VerificationJob, error) {
	var job VerificationJob
	if err := json.Unmarshal([]byte(body), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal verification job: %w", err)
	}
	job.Reference = strings.TrimSpace(job.Reference)
	if job.Reference == "" {
		return nil, fmt.Errorf("verification job has no reference")
	}
	return &job, nil
}
