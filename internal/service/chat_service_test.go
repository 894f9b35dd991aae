package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/port"
	"github.com/Cray749/HaqqMitra-LawyerInterface/mocks"
)

func TestReply_Success(t *testing.T) {
	var captured []domain.PromptMessage
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]domain.PromptMessage)
		}).
		Return(&port.Completion{Content: "You should file a reply within 30 days."}, nil)
	svc := NewChatService(client, testPromptConfig)

	out, err := svc.Reply(context.Background(), "What is my deadline?", nil, testContext)

	require.NoError(t, err)
	assert.Equal(t, "You should file a reply within 30 days.", out.Reply)
	assert.Empty(t, out.ErrorNotice)

	require.NotEmpty(t, captured)
	assert.Contains(t, captured[len(captured)-1].Content, "User asks: What is my deadline?")
}

func TestReply_EmptyMessage(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	svc := NewChatService(client, testPromptConfig)

	out, err := svc.Reply(context.Background(), "   ", nil, testContext)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestReply_ClientErrorFallsBackToCannedText(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return(nil, &domain.FlowError{
		Kind:    domain.FlowErrConfigurationMissing,
		Message: "completion API key is not configured",
	})
	svc := NewChatService(client, testPromptConfig)

	out, err := svc.Reply(context.Background(), "hello", nil, testContext)

	require.NoError(t, err)
	assert.Equal(t, chatFallbackReply, out.Reply)
	assert.Equal(t, "The AI assistant is not configured.", out.ErrorNotice)
}

func TestReply_EmptyContentFallsBackToCannedText(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return(&port.Completion{}, nil)
	svc := NewChatService(client, testPromptConfig)

	out, err := svc.Reply(context.Background(), "hello", nil, testContext)

	require.NoError(t, err)
	assert.Equal(t, chatFallbackReply, out.Reply)
}

func TestReply_HistoryForwarded(t *testing.T) {
	var captured []domain.PromptMessage
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]domain.PromptMessage)
		}).
		Return(&port.Completion{Content: "ok"}, nil)
	svc := NewChatService(client, testPromptConfig)

	history := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "earlier question"},
		{Role: domain.RoleAssistant, Content: "earlier answer"},
	}

	_, err := svc.Reply(context.Background(), "follow-up", history, testContext)

	require.NoError(t, err)
	require.Len(t, captured, 4)
	assert.Equal(t, "earlier question", captured[1].Content)
	assert.Equal(t, "earlier answer", captured[2].Content)
}

func TestChallenge_Success(t *testing.T) {
	var captured []domain.PromptMessage
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]domain.PromptMessage)
		}).
		Return(&port.Completion{Content: "But opposing counsel will argue the notice was late."}, nil)
	svc := NewChatService(client, testPromptConfig)

	out, err := svc.Challenge(context.Background(), "We served notice on time", nil, testContext)

	require.NoError(t, err)
	assert.Equal(t, "But opposing counsel will argue the notice was late.", out.Reply)

	require.NotEmpty(t, captured)
	assert.Contains(t, captured[len(captured)-1].Content, `User's statement/argument: "We served notice on time"`)
}

func TestChallenge_EmptyStatement(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	svc := NewChatService(client, testPromptConfig)

	out, err := svc.Challenge(context.Background(), "", nil, testContext)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
}

func TestChallenge_ClientErrorFallsBackToCannedText(t *testing.T) {
	client := new(mocks.MockCompletionClient)
	client.On("Complete", mock.Anything, mock.Anything).Return(nil, &domain.FlowError{
		Kind:    domain.FlowErrNonSuccessStatus,
		Message: "completion API returned status 500",
	})
	svc := NewChatService(client, testPromptConfig)

	out, err := svc.Challenge(context.Background(), "my argument", nil, testContext)

	require.NoError(t, err)
	assert.Equal(t, advocateFallbackReply, out.Reply)
	assert.Equal(t, "The AI assistant could not be reached.", out.ErrorNotice)
}
