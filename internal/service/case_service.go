package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/port"
)

// CaseService manages case intake records and stored analysis snapshots.
type CaseService interface {
	Create(ctx context.Context, name string) (*domain.Case, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Case, error)
	List(ctx context.Context) ([]domain.Case, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	UpdateDetails(ctx context.Context, id uuid.UUID, details domain.CaseDetails) error
	Delete(ctx context.Context, id uuid.UUID) error

	SaveSnapshot(ctx context.Context, caseID uuid.UUID, kind domain.AnalysisKind, payload interface{}) (*domain.AnalysisSnapshot, error)
	ListSnapshots(ctx context.Context, caseID uuid.UUID) ([]domain.AnalysisSnapshot, error)
	LatestSnapshot(ctx context.Context, caseID uuid.UUID, kind domain.AnalysisKind) (*domain.AnalysisSnapshot, error)
}

type caseService struct {
	cases    port.CaseRepository
	analyses port.AnalysisRepository
}

// NewCaseService creates a CaseService over the given repositories.
func NewCaseService(cases port.CaseRepository, analyses port.AnalysisRepository) CaseService {
	return &caseService{cases: cases, analyses: analyses}
}

func (s *caseService) Create(ctx context.Context, name string) (*domain.Case, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Untitled Case"
	}
	c := &domain.Case{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.cases.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *caseService) Get(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	return s.cases.GetByID(ctx, id)
}

func (s *caseService) List(ctx context.Context) ([]domain.Case, error) {
	return s.cases.List(ctx)
}

func (s *caseService) Rename(ctx context.Context, id uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrEmptyMessage
	}
	return s.cases.Rename(ctx, id, name)
}

func (s *caseService) UpdateDetails(ctx context.Context, id uuid.UUID, details domain.CaseDetails) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return s.cases.UpdateDetails(ctx, id, payload)
}

func (s *caseService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.cases.Delete(ctx, id)
}

func (s *caseService) SaveSnapshot(ctx context.Context, caseID uuid.UUID, kind domain.AnalysisKind, payload interface{}) (*domain.AnalysisSnapshot, error) {
	if _, ok := domain.AllowedAnalysisKinds[string(kind)]; !ok {
		return nil, domain.ErrInvalidSnapshot
	}
	// Ensure the case exists before attaching a snapshot.
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	snap := &domain.AnalysisSnapshot{
		ID:        uuid.New(),
		CaseID:    caseID,
		Kind:      kind,
		Payload:   raw,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.analyses.Save(ctx, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *caseService) ListSnapshots(ctx context.Context, caseID uuid.UUID) ([]domain.AnalysisSnapshot, error) {
	return s.analyses.ListByCase(ctx, caseID)
}

func (s *caseService) LatestSnapshot(ctx context.Context, caseID uuid.UUID, kind domain.AnalysisKind) (*domain.AnalysisSnapshot, error) {
	return s.analyses.LatestByKind(ctx, caseID, kind)
}
