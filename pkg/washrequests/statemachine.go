package washrequests

import (
	"time"

	"github.com/chris/washflow/pkg/apperr"
	"github.com/chris/washflow/pkg/models"
)

// CheckAdvance validates an outlet moving a request from current to target.
// Completed is reachable from any non-terminal status once paid; every other
// target must be exactly the next step.
func CheckAdvance(current, target models.WashStatus) error {
	if !target.IsValid() {
		return apperr.New(apperr.ErrValidation, "unknown status %q", target)
	}
	if current.IsTerminal() {
		return apperr.New(apperr.ErrInvalidTransition, "wash request is already %s", current)
	}
	if current == models.StatusInitiated {
		return apperr.New(apperr.ErrInvalidTransition, "wash request has not been paid for")
	}
	if target == models.StatusCompleted {
		return nil
	}
	if target == models.StatusCancelled {
		return apperr.New(apperr.ErrInvalidTransition, "outlets cannot cancel a wash request")
	}
	if target.Index() != current.Index()+1 {
		return apperr.New(apperr.ErrInvalidTransition, "cannot move from %s to %s", current, target)
	}
	return nil
}

// CheckCancel validates a cancellation from current.
func CheckCancel(current models.WashStatus) error {
	if current.IsTerminal() {
		return apperr.New(apperr.ErrInvalidTransition, "wash request is already %s", current)
	}
	return nil
}

// apply moves req to status and appends the matching timeline entry. The entry
// never predates the previous one, so the timeline stays ordered even when
// clocks disagree.
func apply(req *models.WashRequest, status models.WashStatus, actor models.Actor, now time.Time) {
	ts := now
	if last := req.LastTimelineAt(); ts.Before(last) {
		ts = last
	}

	req.Status = status
	if idx := status.Index(); idx >= 0 {
		req.CurrentStep = idx
	}
	req.StatusTimeline = append(req.StatusTimeline, models.TimelineEntry{
		Status:    status,
		Timestamp: ts,
		UpdatedBy: actor,
	})
	req.UpdatedAt = ts

	switch status {
	case models.StatusCompleted:
		req.CompletedAt = &ts
	case models.StatusCancelled:
		req.CancelledAt = &ts
	}
}
