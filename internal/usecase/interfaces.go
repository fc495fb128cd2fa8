package usecase

import (
	"context"

	"github.com/languagepeople/outreach-backend/internal/infra/queue"
)

// LeadEventPublisher pushes lead lifecycle events onto the event bus.
// Publishing is best effort: a broker failure is logged, never surfaced to
// the user action that triggered it.
type LeadEventPublisher interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}
