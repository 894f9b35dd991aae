package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
)

// MockChatService is a mock implementation of service.ChatService.
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Reply(ctx context.Context, userMessage string, history []domain.ChatMessage, cc domain.CaseContext) (*domain.ChatReply, error) {
	args := m.Called(ctx, userMessage, history, cc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatReply), args.Error(1)
}

func (m *MockChatService) Challenge(ctx context.Context, userStatement string, history []domain.ChatMessage, cc domain.CaseContext) (*domain.AdvocateReply, error) {
	args := m.Called(ctx, userStatement, history, cc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdvocateReply), args.Error(1)
}
