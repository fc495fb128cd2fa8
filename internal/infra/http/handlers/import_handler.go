package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/languagepeople/outreach-backend/internal/infra/http/middleware"
	"github.com/languagepeople/outreach-backend/internal/usecase"
)

// maxImportBytes caps uploaded documents; district spreadsheets run a few
// hundred KB at most.
const maxImportBytes = 10 << 20

type ImportHandler struct {
	ImportUC *usecase.ImportLeadsUseCase
}

func NewImportHandler(uc *usecase.ImportLeadsUseCase) *ImportHandler {
	return &ImportHandler{ImportUC: uc}
}

// Handle (POST /import) accepts the raw CSV document as the request body
// and runs a merge-mode import. A batch that admits nothing still answers
// 200 with imported: 0 so the UI can message it differently.
func (h *ImportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
	if err != nil {
		http.Error(w, "failed to read document", http.StatusBadRequest)
		return
	}

	output, err := h.ImportUC.Execute(r.Context(), string(body))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if output.Imported > 0 {
		middleware.RecordImport(output.Imported)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(output)
}
