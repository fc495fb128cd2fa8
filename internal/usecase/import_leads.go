package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/languagepeople/outreach-backend/internal/entity"
	"github.com/languagepeople/outreach-backend/internal/infra/queue"
	"github.com/languagepeople/outreach-backend/internal/leadcsv"
	"github.com/languagepeople/outreach-backend/internal/store"
)

type ImportLeadsUseCase struct {
	Store  *store.LeadStore
	Queue  LeadEventPublisher
	Agents []string
}

func NewImportLeadsUseCase(leadStore *store.LeadStore, publisher LeadEventPublisher, agents []string) *ImportLeadsUseCase {
	if len(agents) == 0 {
		agents = entity.DefaultAgents
	}
	return &ImportLeadsUseCase{
		Store:  leadStore,
		Queue:  publisher,
		Agents: agents,
	}
}

type ImportLeadsOutput struct {
	BatchID    string `json:"batch_id"`
	Imported   int    `json:"imported"`
	TotalLeads int    `json:"total_leads"`
	Msg        string `json:"msg"`
}

// Execute runs a merge-mode import of a user-supplied CSV document.
// A batch where every row was malformed or a duplicate is a valid
// zero-imported outcome, distinguishable by Imported == 0, not an error.
func (uc *ImportLeadsUseCase) Execute(ctx context.Context, document string) (*ImportLeadsOutput, error) {
	existing := uc.Store.All()
	newLeads := leadcsv.ImportDocument(document, leadcsv.ModeMerge, existing, uc.Agents)

	batchID := uuid.New().String()

	if len(newLeads) == 0 {
		return &ImportLeadsOutput{
			BatchID:    batchID,
			Imported:   0,
			TotalLeads: len(existing),
			Msg:        "No new leads imported (duplicates or malformed rows)",
		}, nil
	}

	if err := uc.Store.ApplyImport(ctx, newLeads); err != nil {
		return nil, &TechnicalError{
			Code:    "PERSISTENCE_ERROR",
			Message: "failed to persist imported leads: " + err.Error(),
		}
	}

	if uc.Queue != nil {
		payload := queue.LeadEventPayload{
			EventID:    uuid.New().String(),
			Kind:       queue.EventLeadsImported,
			BatchID:    batchID,
			Imported:   len(newLeads),
			OccurredAt: time.Now(),
		}
		if err := uc.Queue.PublishLeadEvent(ctx, payload); err != nil {
			log.Printf("failed to publish import event: %v", err)
		}
	}

	return &ImportLeadsOutput{
		BatchID:    batchID,
		Imported:   len(newLeads),
		TotalLeads: len(existing) + len(newLeads),
		Msg:        fmt.Sprintf("Imported %d new leads", len(newLeads)),
	}, nil
}
