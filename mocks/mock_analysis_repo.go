package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
)

// MockAnalysisRepo is a mock implementation of port.AnalysisRepository.
type MockAnalysisRepo struct {
	mock.Mock
}

func (m *MockAnalysisRepo) Save(ctx context.Context, snap *domain.AnalysisSnapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *MockAnalysisRepo) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.AnalysisSnapshot, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnalysisSnapshot), args.Error(1)
}

func (m *MockAnalysisRepo) LatestByKind(ctx context.Context, caseID uuid.UUID, kind domain.AnalysisKind) (*domain.AnalysisSnapshot, error) {
	args := m.Called(ctx, caseID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisSnapshot), args.Error(1)
}
