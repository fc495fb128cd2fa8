package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/languagepeople/outreach-backend/internal/entity"
	"github.com/languagepeople/outreach-backend/internal/store"
	"github.com/languagepeople/outreach-backend/internal/usecase"
)

func seededStore(t *testing.T, leads ...entity.Lead) *store.LeadStore {
	t.Helper()
	s := store.NewLeadStore(nil)
	assert.NoError(t, s.Load(context.Background(), leads))
	return s
}

func testRouter(s *store.LeadStore) chi.Router {
	leadsHandler := NewLeadsHandler(s)
	leadsHandler.Now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }

	outcomeUC := usecase.NewRecordOutcomeUseCase(s, nil)
	outcomeUC.Now = leadsHandler.Now

	r := chi.NewRouter()
	r.Get("/leads", leadsHandler.HandleList)
	r.Get("/leads/stats", leadsHandler.HandleStats)
	r.Post("/leads/{id}/outcome", NewOutcomeHandler(outcomeUC).Handle)
	r.Post("/import", NewImportHandler(usecase.NewImportLeadsUseCase(s, nil, nil)).Handle)
	r.Get("/export", NewExportHandler(s).Handle)
	r.Post("/email/draft", NewEmailHandler().Handle)
	r.Get("/agents", NewAgentsHandler([]string{"Ziggy", "Nathan"}).Handle)
	return r
}

func TestHandleListRequiresAgent(t *testing.T) {
	r := testRouter(seededStore(t))

	req := httptest.NewRequest("GET", "/leads", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleListFiltersAndSorts(t *testing.T) {
	r := testRouter(seededStore(t,
		entity.Lead{ID: 1, FirstName: "Zoe", Company: "Busytown", Status: entity.StatusNew, AssignedAgent: "Ziggy"},
		entity.Lead{ID: 2, FirstName: "Amy", Company: "Acme", Status: entity.StatusNew, AssignedAgent: "Ziggy"},
		entity.Lead{ID: 3, FirstName: "Sam", Company: "Other", Status: entity.StatusClosed, AssignedAgent: "Nathan"},
	))

	req := httptest.NewRequest("GET", "/leads?agent=Ziggy&status=New&sort=company", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp LeadListResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "Acme", resp.Leads[0].Company)
	assert.Equal(t, "Busytown", resp.Leads[1].Company)
}

func TestHandleStats(t *testing.T) {
	contact := "2026-08-31"
	r := testRouter(seededStore(t,
		entity.Lead{ID: 1, Status: entity.StatusFollowUp, AssignedAgent: "Ziggy", LastContact: &contact},
	))

	req := httptest.NewRequest("GET", "/leads/stats?agent=Ziggy", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats entity.Stats
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.CalledToday)
	assert.Equal(t, usecase.WeeklyGoal, stats.WeeklyGoal)
}

func TestOutcomeHandlerHappyPath(t *testing.T) {
	s := seededStore(t, entity.Lead{ID: 5, FirstName: "Jane", Status: entity.StatusNew, AssignedAgent: "Ziggy"})
	r := testRouter(s)

	body, _ := json.Marshal(OutcomeRequest{Status: entity.StatusClosed, Notes: "signed"})
	req := httptest.NewRequest("POST", "/leads/5/outcome", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var updated entity.Lead
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
	assert.Equal(t, entity.StatusClosed, updated.Status)
	assert.Equal(t, "[2026-08-31]: signed", updated.Notes)

	stored, _ := s.Get(5)
	assert.Equal(t, entity.StatusClosed, stored.Status)
}

func TestOutcomeHandlerUnknownLeadIs404(t *testing.T) {
	r := testRouter(seededStore(t))

	body, _ := json.Marshal(OutcomeRequest{Status: entity.StatusClosed})
	req := httptest.NewRequest("POST", "/leads/99/outcome", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOutcomeHandlerNonNumericIDIs400(t *testing.T) {
	r := testRouter(seededStore(t))

	req := httptest.NewRequest("POST", "/leads/abc/outcome", strings.NewReader("{}"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportHandlerDistinguishesZeroImported(t *testing.T) {
	s := seededStore(t, entity.Lead{ID: 1, FirstName: "Jane", Company: "Acme School", Phone: "555-1234", Email: "jane@acme.org"})
	r := testRouter(s)

	doc := "School Name,Admin First Name,Telephone,Email,Called Y/N\n" +
		"Acme School,Jane,555-1234,jane@acme.org,\n"
	req := httptest.NewRequest("POST", "/import", strings.NewReader(doc))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var output usecase.ImportLeadsOutput
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&output))
	assert.Equal(t, 0, output.Imported)
	assert.Equal(t, 1, s.Len())
}

func TestExportHandlerServesAttachment(t *testing.T) {
	r := testRouter(seededStore(t,
		entity.Lead{ID: 1, FirstName: "Jane", Company: "Acme School", AssignedAgent: "Ziggy", Status: entity.StatusNew},
	))

	req := httptest.NewRequest("GET", "/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ExportFilename)
	assert.Contains(t, w.Body.String(), `"Telephone Number"`)
	assert.Contains(t, w.Body.String(), `"Jane"`)
}

func TestEmailHandlerJSONAndEML(t *testing.T) {
	r := testRouter(seededStore(t))

	body, _ := json.Marshal(DraftRequest{FirstName: "Jane", Company: "Acme School", Notes: "send rates"})
	req := httptest.NewRequest("POST", "/email/draft", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hi Jane,")

	req = httptest.NewRequest("POST", "/email/draft?format=eml", bytes.NewReader(body))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "message/rfc822", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "followup_draft.eml")
}

func TestAgentsHandlerListsRoster(t *testing.T) {
	r := testRouter(seededStore(t))

	req := httptest.NewRequest("GET", "/agents", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string][]string
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"Ziggy", "Nathan"}, resp["agents"])
}
