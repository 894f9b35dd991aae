package prompt

import (
	"encoding/base64"
	"strings"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
)

// Known text MIME markers whose payloads are decoded into the prompt.
var textMimeMarkers = []string{"text/plain", "application/json", "text/html", "text/csv"}

// Builder assembles the message sequence for one AI flow. It is a pure
// transformation: same inputs always produce the same sequence.
type Builder struct {
	instruction   string
	snippetBudget int
}

// Request carries the caller-side inputs for one assembly.
type Request struct {
	// Lead is the free-form user ask or statement, already phrased
	// (e.g. `User asks: ...`). Empty for the one-shot analysis flows.
	Lead string
	// Context holds the opaque case-details JSON and document references.
	Context domain.CaseContext
	// History is prior conversation turns; compacted to strict role
	// alternation before inclusion.
	History []domain.ChatMessage
	// Closing is the flow-specific final instruction line.
	Closing string
}

// NewBuilder creates a Builder for one flow's role instruction and document
// snippet budget (characters of decoded text per document).
func NewBuilder(instruction string, snippetBudget int) *Builder {
	return &Builder{instruction: instruction, snippetBudget: snippetBudget}
}

// Build produces the ordered message sequence: one system message, the
// compacted history, and one final user message carrying the lead, the case
// details payload, and a digest of every document reference.
func (b *Builder) Build(req Request) []domain.PromptMessage {
	messages := []domain.PromptMessage{
		{Role: domain.RoleSystem, Content: b.instruction},
	}

	for _, turn := range req.History {
		if messages[len(messages)-1].Role == turn.Role {
			continue
		}
		messages = append(messages, domain.PromptMessage{Role: turn.Role, Content: turn.Content})
	}

	var sb strings.Builder
	if req.Lead != "" {
		sb.WriteString(req.Lead)
	}

	details := strings.TrimSpace(req.Context.CaseDetailsJSON)
	if details != "" && details != "{}" {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString("Case Details (JSON format):\n")
		sb.WriteString(req.Context.CaseDetailsJSON)
	}

	if len(req.Context.Documents) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString("Uploaded Documents Overview (content from data URIs, if text-based):")
		for _, ref := range req.Context.Documents {
			sb.WriteString("\n- ")
			sb.WriteString(b.digest(ref))
		}
	} else {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString("No documents uploaded.")
	}

	if req.Closing != "" {
		sb.WriteString("\n\n")
		sb.WriteString(req.Closing)
	}

	return append(messages, domain.PromptMessage{Role: domain.RoleUser, Content: sb.String()})
}

// digest renders one document reference into a single prompt line. Failures
// affect only the reference at hand; the caller continues with the rest.
func (b *Builder) digest(ref string) string {
	if !strings.HasPrefix(ref, "data:") {
		return "Document reference: " + ref
	}

	comma := strings.Index(ref, ",")
	if comma == -1 {
		return "Document (format error: no comma in data URI)"
	}
	meta := ref[:comma]
	payload := ref[comma+1:]

	switch {
	case containsAny(meta, textMimeMarkers):
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "Document (error processing data URI)"
		}
		return "Text Document Snippet: " + truncateRunes(string(decoded), b.snippetBudget)
	case strings.Contains(meta, "application/pdf"):
		return "PDF Document (content not directly included, but note its presence)."
	case strings.Contains(meta, "image/"):
		return "Image Document (visual content, not processed as text)."
	default:
		return "Document (non-text or error processing)."
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// truncateRunes caps s at max runes, appending "..." when cut.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
