package port

import (
	"context"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
)

// Completion is the normalized result of one completion call: the first
// choice's text plus the opaque citation/search side channels.
type Completion struct {
	Content string
	Sources domain.SourceMeta
}

// CompletionClient abstracts the upstream chat-completions endpoint. One
// invocation issues at most one network request; no retries.
type CompletionClient interface {
	Complete(ctx context.Context, messages []domain.PromptMessage) (*Completion, error)
}
