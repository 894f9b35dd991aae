package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) GenerateCaseAnalysis(ctx context.Context, cc domain.CaseContext) (*domain.CaseAnalysis, error) {
	args := m.Called(ctx, cc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseAnalysis), args.Error(1)
}

func (m *MockAnalysisService) GenerateKeyPoints(ctx context.Context, cc domain.CaseContext) (*domain.KeyPoints, error) {
	args := m.Called(ctx, cc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.KeyPoints), args.Error(1)
}

func (m *MockAnalysisService) GenerateStrategySnapshot(ctx context.Context, cc domain.CaseContext) (*domain.StrategySnapshot, error) {
	args := m.Called(ctx, cc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StrategySnapshot), args.Error(1)
}

func (m *MockAnalysisService) GenerateCostRoadmap(ctx context.Context, cc domain.CaseContext) (*domain.CostRoadmap, error) {
	args := m.Called(ctx, cc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostRoadmap), args.Error(1)
}

func (m *MockAnalysisService) GenerateOutline(ctx context.Context, details domain.CaseDetails, documents []string) (*domain.PresentationOutline, error) {
	args := m.Called(ctx, details, documents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PresentationOutline), args.Error(1)
}
