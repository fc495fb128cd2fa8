package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/languagepeople/outreach-backend/internal/entity"
	"github.com/languagepeople/outreach-backend/internal/infra/queue"
	"github.com/languagepeople/outreach-backend/internal/store"
)

const dateLayout = "2006-01-02"

type RecordOutcomeInput struct {
	LeadID int               `json:"lead_id"`
	Status entity.LeadStatus `json:"status"`
	Notes  string            `json:"notes"`
}

type RecordOutcomeUseCase struct {
	Store *store.LeadStore
	Queue LeadEventPublisher
	Now   func() time.Time
}

func NewRecordOutcomeUseCase(leadStore *store.LeadStore, publisher LeadEventPublisher) *RecordOutcomeUseCase {
	return &RecordOutcomeUseCase{
		Store: leadStore,
		Queue: publisher,
		Now:   time.Now,
	}
}

// TranscribeOutcome is the pure transcription step: status transition,
// lastContact stamped with the calendar day, and the notes text appended as
// a dated entry below the existing history. Earlier entries are never
// overwritten; a lead called twice shows both.
func TranscribeOutcome(lead entity.Lead, notesText string, outcome entity.LeadStatus, day time.Time) entity.Lead {
	today := day.Format(dateLayout)
	lead.Status = outcome
	lead.LastContact = &today

	text := strings.TrimSpace(notesText)
	if text != "" {
		entry := "[" + today + "]: " + text
		if lead.Notes == "" {
			lead.Notes = entry
		} else {
			lead.Notes = lead.Notes + "\n" + entry
		}
	}
	return lead
}

func (uc *RecordOutcomeUseCase) Execute(ctx context.Context, input RecordOutcomeInput) (*entity.Lead, error) {
	if !input.Status.Valid() {
		return nil, &DomainError{
			Code:    "INVALID_STATUS",
			Message: fmt.Sprintf("unknown call outcome %q", input.Status),
		}
	}

	lead, ok := uc.Store.Get(input.LeadID)
	if !ok {
		return nil, &DomainError{
			Code:    "LEAD_NOT_FOUND",
			Message: fmt.Sprintf("no lead with id %d", input.LeadID),
		}
	}

	updated := TranscribeOutcome(lead, input.Notes, input.Status, uc.Now())

	if err := uc.Store.ApplyOutcome(ctx, updated); err != nil {
		if errors.Is(err, store.ErrLeadNotFound) {
			return nil, &DomainError{
				Code:    "LEAD_NOT_FOUND",
				Message: fmt.Sprintf("no lead with id %d", input.LeadID),
			}
		}
		return nil, &TechnicalError{
			Code:    "PERSISTENCE_ERROR",
			Message: "failed to persist call outcome: " + err.Error(),
		}
	}

	if uc.Queue != nil {
		payload := queue.LeadEventPayload{
			EventID:    uuid.New().String(),
			Kind:       queue.EventOutcomeRecorded,
			LeadID:     updated.ID,
			Agent:      updated.AssignedAgent,
			Status:     string(updated.Status),
			OccurredAt: uc.Now(),
		}
		if err := uc.Queue.PublishLeadEvent(ctx, payload); err != nil {
			log.Printf("failed to publish outcome event: %v", err)
		}
	}

	return &updated, nil
}
