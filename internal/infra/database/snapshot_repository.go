package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"github.com/languagepeople/outreach-backend/internal/entity"
)

// SnapshotKey is the fixed key the whole session persists under. The v7
// suffix tracks the lead record schema generation.
const SnapshotKey = "sales_leads_v7"

// SnapshotRepository persists the full lead collection as one JSON blob
// under a fixed key. The blob is opaque to the database; queries never
// reach into it.
type SnapshotRepository struct {
	DB  *sql.DB
	Key string
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{DB: db, Key: SnapshotKey}
}

func (r *SnapshotRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS lead_snapshots (
			key        TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	_, err := r.DB.ExecContext(ctx, query)
	return err
}

func (r *SnapshotRepository) Save(ctx context.Context, leads []entity.Lead) error {
	payload, err := json.Marshal(leads)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO lead_snapshots (key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET
			payload = EXCLUDED.payload,
			updated_at = NOW()
	`
	_, err = r.DB.ExecContext(ctx, query, r.Key, payload)
	return err
}

// Load reads the persisted collection. found is false when no snapshot
// exists; a corrupt payload is logged and treated as absent so startup
// falls through to the bootstrap document.
func (r *SnapshotRepository) Load(ctx context.Context) ([]entity.Lead, bool, error) {
	var payload []byte
	err := r.DB.QueryRowContext(ctx,
		`SELECT payload FROM lead_snapshots WHERE key = $1`, r.Key,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var leads []entity.Lead
	if err := json.Unmarshal(payload, &leads); err != nil {
		log.Printf("snapshot %q is unreadable, treating as absent: %v", r.Key, err)
		return nil, false, nil
	}
	return leads, true, nil
}
