package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/languagepeople/outreach-backend/internal/entity"
	"github.com/languagepeople/outreach-backend/internal/store"
	"github.com/languagepeople/outreach-backend/internal/usecase"
)

type LeadsHandler struct {
	Store *store.LeadStore
	Now   func() time.Time
}

func NewLeadsHandler(leadStore *store.LeadStore) *LeadsHandler {
	return &LeadsHandler{
		Store: leadStore,
		Now:   time.Now,
	}
}

type LeadListResponse struct {
	Leads []entity.Lead `json:"leads"`
	Count int           `json:"count"`
}

// HandleList (GET /leads?agent=&status=&sort=)
func (h *LeadsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	agent := r.URL.Query().Get("agent")
	if agent == "" {
		http.Error(w, "agent is required", http.StatusBadRequest)
		return
	}

	statusFilter := r.URL.Query().Get("status")
	sortKey := usecase.SortKey(r.URL.Query().Get("sort"))
	if sortKey == "" {
		sortKey = usecase.SortDefault
	}

	visible := usecase.VisibleLeads(h.Store.All(), agent, statusFilter, sortKey)
	if visible == nil {
		visible = []entity.Lead{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LeadListResponse{Leads: visible, Count: len(visible)})
}

// HandleStats (GET /leads/stats?agent=)
func (h *LeadsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	agent := r.URL.Query().Get("agent")
	if agent == "" {
		http.Error(w, "agent is required", http.StatusBadRequest)
		return
	}

	stats := usecase.ComputeStats(h.Store.All(), agent, h.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// AgentsHandler serves the fixed roster. Picking a name here is identity
// selection, not authentication.
type AgentsHandler struct {
	Agents []string
}

func NewAgentsHandler(agents []string) *AgentsHandler {
	return &AgentsHandler{Agents: agents}
}

func (h *AgentsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"agents": h.Agents})
}
