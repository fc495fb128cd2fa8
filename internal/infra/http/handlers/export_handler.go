package handlers

import (
	"net/http"

	"github.com/languagepeople/outreach-backend/internal/infra/http/middleware"
	"github.com/languagepeople/outreach-backend/internal/leadcsv"
	"github.com/languagepeople/outreach-backend/internal/store"
)

// ExportFilename is the fixed download name the UI has always offered.
const ExportFilename = "updated_leads_export.csv"

type ExportHandler struct {
	Store *store.LeadStore
}

func NewExportHandler(leadStore *store.LeadStore) *ExportHandler {
	return &ExportHandler{Store: leadStore}
}

// Handle (GET /export) renders the whole collection in the CSV dialect.
func (h *ExportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	document := leadcsv.Serialize(h.Store.All())

	middleware.RecordExport()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	w.Write([]byte(document))
}
