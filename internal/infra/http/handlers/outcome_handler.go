package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/languagepeople/outreach-backend/internal/entity"
	"github.com/languagepeople/outreach-backend/internal/infra/http/middleware"
	"github.com/languagepeople/outreach-backend/internal/usecase"
)

type OutcomeHandler struct {
	OutcomeUC *usecase.RecordOutcomeUseCase
}

func NewOutcomeHandler(uc *usecase.RecordOutcomeUseCase) *OutcomeHandler {
	return &OutcomeHandler{OutcomeUC: uc}
}

type OutcomeRequest struct {
	Status entity.LeadStatus `json:"status"`
	Notes  string            `json:"notes"`
}

// Handle (POST /leads/{id}/outcome)
func (h *OutcomeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "lead id must be an integer", http.StatusBadRequest)
		return
	}

	var req OutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.OutcomeUC.Execute(r.Context(), usecase.RecordOutcomeInput{
		LeadID: id,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		if de, ok := err.(*usecase.DomainError); ok {
			code := http.StatusBadRequest
			if de.Code == "LEAD_NOT_FOUND" {
				code = http.StatusNotFound
			}
			http.Error(w, de.Message, code)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	middleware.RecordOutcome(string(updated.Status))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}
