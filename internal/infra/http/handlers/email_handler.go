package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/languagepeople/outreach-backend/internal/infra/mail"
)

type EmailHandler struct{}

func NewEmailHandler() *EmailHandler {
	return &EmailHandler{}
}

type DraftRequest struct {
	FirstName string `json:"first_name"`
	Company   string `json:"company"`
	Notes     string `json:"notes"`
	To        string `json:"to,omitempty"`
}

// Handle (POST /email/draft) returns the templated follow-up as JSON, or
// as a downloadable RFC822 draft with ?format=eml.
func (h *EmailHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	draft, err := mail.ComposeFollowUp(req.FirstName, req.Company, req.Notes)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "eml" {
		raw, err := mail.RenderEML(mail.BuildMessage(req.To, draft))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "message/rfc822")
		w.Header().Set("Content-Disposition", `attachment; filename="followup_draft.eml"`)
		w.Write(raw)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(draft)
}
