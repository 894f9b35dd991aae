package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
)

type analysisRepo struct {
	db *sqlx.DB
}

// NewAnalysisRepo creates a new PostgreSQL-backed AnalysisRepository.
func NewAnalysisRepo(db *sqlx.DB) *analysisRepo {
	return &analysisRepo{db: db}
}

func (r *analysisRepo) Save(ctx context.Context, snap *domain.AnalysisSnapshot) error {
	query := `
		INSERT INTO analysis_snapshots (id, case_id, kind, payload, created_at)
		VALUES (:id, :case_id, :kind, :payload, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, snap); err != nil {
		return fmt.Errorf("inserting analysis snapshot: %w", err)
	}
	return nil
}

func (r *analysisRepo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.AnalysisSnapshot, error) {
	snaps := []domain.AnalysisSnapshot{}
	query := `
		SELECT id, case_id, kind, payload, created_at
		FROM analysis_snapshots
		WHERE case_id = $1
		ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &snaps, query, caseID); err != nil {
		return nil, fmt.Errorf("listing analysis snapshots: %w", err)
	}
	return snaps, nil
}

func (r *analysisRepo) LatestByKind(ctx context.Context, caseID uuid.UUID, kind domain.AnalysisKind) (*domain.AnalysisSnapshot, error) {
	var snap domain.AnalysisSnapshot
	query := `
		SELECT id, case_id, kind, payload, created_at
		FROM analysis_snapshots
		WHERE case_id = $1 AND kind = $2
		ORDER BY created_at DESC
		LIMIT 1`
	if err := r.db.GetContext(ctx, &snap, query, caseID, kind); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching latest analysis snapshot: %w", err)
	}
	return &snap, nil
}
