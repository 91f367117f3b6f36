package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xavierca1/aoe-ads/internal/entity"
)

// LeadRepository lê a tabela bookings, que pertence ao dashboard. Este
// serviço só consulta e atualiza o action_status.
type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) FindByRequestID(ctx context.Context, requestID string) (*entity.Lead, error) {
	query := `
		SELECT request_id, email, full_name, vehicle, COALESCE(action_status, '')
		FROM bookings
		WHERE request_id = $1
	`

	lead := &entity.Lead{}
	err := r.DB.QueryRowContext(ctx, query, requestID).Scan(
		&lead.RequestID,
		&lead.Email,
		&lead.FullName,
		&lead.Vehicle,
		&lead.ActionStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar lead %s: %w", requestID, err)
	}

	return lead, nil
}

func (r *LeadRepository) UpdateActionStatus(ctx context.Context, requestID, status string) error {
	query := `UPDATE bookings SET action_status = $2 WHERE request_id = $1`

	result, err := r.DB.ExecContext(ctx, query, requestID, status)
	if err != nil {
		return fmt.Errorf("erro ao atualizar action_status de %s: %w", requestID, err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}
