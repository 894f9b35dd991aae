package port

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
)

// CaseRepository persists cases and their intake details.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
	List(ctx context.Context) ([]domain.Case, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, details json.RawMessage) error
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AnalysisRepository persists generated analysis snapshots per case.
type AnalysisRepository interface {
	Save(ctx context.Context, snap *domain.AnalysisSnapshot) error
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.AnalysisSnapshot, error)
	LatestByKind(ctx context.Context, caseID uuid.UUID, kind domain.AnalysisKind) (*domain.AnalysisSnapshot, error)
}
