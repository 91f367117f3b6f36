package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/aoe-ads/internal/entity"
)

// InteractionRepository grava fatos append-only em email_interactions.
// Não existe update nem delete aqui de propósito.
type InteractionRepository struct {
	DB *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Append(ctx context.Context, event *entity.InteractionEvent) error {
	query := `
		INSERT INTO email_interactions (id, request_id, event_type, timestamp)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.DB.ExecContext(ctx, query,
		event.ID,
		event.RequestID,
		event.EventType,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("erro ao registrar interação %s/%s: %w", event.RequestID, event.EventType, err)
	}

	return nil
}
