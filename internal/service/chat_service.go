package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/config"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/port"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/prompt"
)

// Fallback replies shown when generation fails; chat flows must always hand
// back displayable text.
const (
	chatFallbackReply     = "Sorry, I couldn't generate a response at this moment."
	advocateFallbackReply = "I'm having trouble formulating a challenge right now. Perhaps your argument is too perfect... or I'm momentarily stumped."
)

// ChatService runs the two multi-turn AI flows: the case chatbot and the
// devil's-advocate adversary.
type ChatService interface {
	Reply(ctx context.Context, userMessage string, history []domain.ChatMessage, cc domain.CaseContext) (*domain.ChatReply, error)
	Challenge(ctx context.Context, userStatement string, history []domain.ChatMessage, cc domain.CaseContext) (*domain.AdvocateReply, error)
}

type chatService struct {
	client    port.CompletionClient
	companion *prompt.Builder
	adversary *prompt.Builder
}

// NewChatService creates a ChatService over the given completion client and
// snippet budgets.
func NewChatService(client port.CompletionClient, cfg *config.PromptConfig) ChatService {
	return &chatService{
		client:    client,
		companion: prompt.NewBuilder(prompt.ChatbotInstruction, cfg.ChatSnippetChars),
		adversary: prompt.NewBuilder(prompt.AdversaryInstruction, cfg.ChatSnippetChars),
	}
}

func (s *chatService) Reply(ctx context.Context, userMessage string, history []domain.ChatMessage, cc domain.CaseContext) (*domain.ChatReply, error) {
	if strings.TrimSpace(userMessage) == "" {
		return nil, domain.ErrEmptyMessage
	}

	messages := s.companion.Build(prompt.Request{
		Lead:    "User asks: " + userMessage,
		Context: cc,
		History: history,
		Closing: "Please provide your answer based on all the above information and the chat history.",
	})

	comp, err := s.client.Complete(ctx, messages)
	if err != nil {
		log.Printf("chatbot: completion call failed: %v", err)
		return &domain.ChatReply{Reply: chatFallbackReply, ErrorNotice: userNotice(err)}, nil
	}

	reply := comp.Content
	if reply == "" {
		reply = chatFallbackReply
	}
	return &domain.ChatReply{Reply: reply, Sources: comp.Sources}, nil
}

func (s *chatService) Challenge(ctx context.Context, userStatement string, history []domain.ChatMessage, cc domain.CaseContext) (*domain.AdvocateReply, error) {
	if strings.TrimSpace(userStatement) == "" {
		return nil, domain.ErrEmptyMessage
	}

	messages := s.adversary.Build(prompt.Request{
		Lead:    fmt.Sprintf("User's statement/argument: %q", userStatement),
		Context: cc,
		History: history,
		Closing: "As the Devil's Advocate, provide your counter-argument or challenge to the user's statement based on all available information.",
	})

	comp, err := s.client.Complete(ctx, messages)
	if err != nil {
		log.Printf("devils advocate: completion call failed: %v", err)
		return &domain.AdvocateReply{Reply: advocateFallbackReply, ErrorNotice: userNotice(err)}, nil
	}

	reply := comp.Content
	if reply == "" {
		reply = advocateFallbackReply
	}
	return &domain.AdvocateReply{Reply: reply, Sources: comp.Sources}, nil
}

// userNotice reduces a flow error to a short message safe to show end users.
func userNotice(err error) string {
	kind, ok := domain.FlowErrorKindOf(err)
	if !ok {
		return "The assistant is unavailable right now."
	}
	switch kind {
	case domain.FlowErrConfigurationMissing:
		return "The AI assistant is not configured."
	case domain.FlowErrNonSuccessStatus, domain.FlowErrTransportFailure:
		return "The AI assistant could not be reached."
	default:
		return "The assistant is unavailable right now."
	}
}
