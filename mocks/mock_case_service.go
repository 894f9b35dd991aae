package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
)

// MockCaseService is a mock implementation of service.CaseService.
type MockCaseService struct {
	mock.Mock
}

func (m *MockCaseService) Create(ctx context.Context, name string) (*domain.Case, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockCaseService) Get(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockCaseService) List(ctx context.Context) ([]domain.Case, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Case), args.Error(1)
}

func (m *MockCaseService) Rename(ctx context.Context, id uuid.UUID, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockCaseService) UpdateDetails(ctx context.Context, id uuid.UUID, details domain.CaseDetails) error {
	args := m.Called(ctx, id, details)
	return args.Error(0)
}

func (m *MockCaseService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCaseService) SaveSnapshot(ctx context.Context, caseID uuid.UUID, kind domain.AnalysisKind, payload interface{}) (*domain.AnalysisSnapshot, error) {
	args := m.Called(ctx, caseID, kind, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisSnapshot), args.Error(1)
}

func (m *MockCaseService) ListSnapshots(ctx context.Context, caseID uuid.UUID) ([]domain.AnalysisSnapshot, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnalysisSnapshot), args.Error(1)
}

func (m *MockCaseService) LatestSnapshot(ctx context.Context, caseID uuid.UUID, kind domain.AnalysisKind) (*domain.AnalysisSnapshot, error) {
	args := m.Called(ctx, caseID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisSnapshot), args.Error(1)
}
