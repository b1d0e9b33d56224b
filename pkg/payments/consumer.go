package payments

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"
	"github.com/chris/washflow/pkg/scheduler"
)

// VerificationConsumer drains the verification queue.
type VerificationConsumer struct {
	service *Service
	logger  *slog.Logger
}

// NewVerificationConsumer creates a new VerificationConsumer.
func NewVerificationConsumer(service *Service, logger *slog.Logger) *VerificationConsumer {
	return &VerificationConsumer{service: service, logger: logger}
}

// HandleSQSEvent verifies every queued reference. Records that hit a
// transient fault are reported back as batch item failures so SQS
// redelivers only those; malformed records and final outcomes are
// acknowledged.
func (c *VerificationConsumer) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	var resp events.SQSEventResponse

	for _, record := range event.Records {
		job, err := scheduler.ParseVerificationJob(record.Body)
		if err != nil {
			c.logger.Error("dropping malformed verification job", "messageId", record.MessageId, "error", err)
			continue
		}

		result, _, err := c.service.VerifyAndReconcile(ctx, job.Reference)
		if err != nil {
			if IsRetryable(err) {
				c.logger.Warn("verification failed, will retry", "reference", job.Reference, "error", err)
				resp.BatchItemFailures = append(resp.BatchItemFailures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
				continue
			}
			c.logger.Info("verification rejected", "reference", job.Reference, "error", err)
			continue
		}

		c.logger.Info("verification processed", "reference", job.Reference, "outcome", result.Outcome)
	}

	return resp, nil
}
