package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
)

type caseRepo struct {
	db *sqlx.DB
}

// NewCaseRepo creates a new PostgreSQL-backed CaseRepository.
func NewCaseRepo(db *sqlx.DB) *caseRepo {
	return &caseRepo{db: db}
}

func (r *caseRepo) Create(ctx context.Context, c *domain.Case) error {
	query := `
		INSERT INTO cases (id, name, details, created_at, updated_at)
		VALUES (:id, :name, :details, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("inserting case: %w", err)
	}
	return nil
}

func (r *caseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	var c domain.Case
	query := `SELECT id, name, details, created_at, updated_at FROM cases WHERE id = $1`
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("fetching case: %w", err)
	}
	return &c, nil
}

func (r *caseRepo) List(ctx context.Context) ([]domain.Case, error) {
	cases := []domain.Case{}
	query := `SELECT id, name, details, created_at, updated_at FROM cases ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &cases, query); err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}
	return cases, nil
}

func (r *caseRepo) UpdateDetails(ctx context.Context, id uuid.UUID, details json.RawMessage) error {
	query := `UPDATE cases SET details = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, details)
	if err != nil {
		return fmt.Errorf("updating case details: %w", err)
	}
	return requireRow(res, domain.ErrCaseNotFound)
}

func (r *caseRepo) Rename(ctx context.Context, id uuid.UUID, name string) error {
	query := `UPDATE cases SET name = $2, updated_at = NOW() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, name)
	if err != nil {
		return fmt.Errorf("renaming case: %w", err)
	}
	return requireRow(res, domain.ErrCaseNotFound)
}

func (r *caseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cases WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting case: %w", err)
	}
	return requireRow(res, domain.ErrCaseNotFound)
}

// requireRow maps a zero-row update/delete to the given not-found error.
func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
