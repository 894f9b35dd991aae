package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/config"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/domain"
	"github.com/Cray749/HaqqMitra-LawyerInterface/internal/port"
)

const defaultEndpoint = "https://api.perplexity.ai/chat/completions"

// Client implements port.CompletionClient against the Perplexity
// chat-completions API. One Complete call issues at most one request; retry
// policy belongs to the caller.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a Client from the LLM config.
func NewClient(cfg *config.LLMConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return newClient(cfg, endpoint)
}

// NewClientWithEndpoint creates a Client pointing at a custom API endpoint
// (for testing).
func NewClientWithEndpoint(cfg *config.LLMConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.LLMConfig, endpoint string) *Client {
	model := cfg.Model
	if model == "" {
		model = "sonar-pro"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// apiResponse models the chat-completions response envelope. Citations and
// search results are kept as raw JSON passthrough.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content   string          `json:"content"`
			Citations json.RawMessage `json:"citations"`
		} `json:"message"`
	} `json:"choices"`
	SearchResults json.RawMessage `json:"search_results"`
}

func (c *Client) Complete(ctx context.Context, messages []domain.PromptMessage) (*port.Completion, error) {
	if c.apiKey == "" {
		return nil, &domain.FlowError{
			Kind:    domain.FlowErrConfigurationMissing,
			Message: "completion API key is not configured",
		}
	}

	reqBody := map[string]interface{}{
		"model":    c.model,
		"messages": messages,
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.FlowError{
			Kind:    domain.FlowErrTransportFailure,
			Message: "completion request failed",
			Err:     err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FlowError{
			Kind:    domain.FlowErrTransportFailure,
			Message: "reading completion response failed",
			Err:     err,
		}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FlowError{
			Kind:       domain.FlowErrNonSuccessStatus,
			Message:    fmt.Sprintf("completion API returned status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Raw:        string(respBody),
		}
	}

	var parsed apiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &domain.FlowError{
			Kind:    domain.FlowErrMalformedJSON,
			Message: "completion response envelope was not valid JSON",
			Raw:     string(respBody),
			Err:     err,
		}
	}

	out := &port.Completion{Sources: domain.SourceMeta{SearchResults: parsed.SearchResults}}
	if len(parsed.Choices) > 0 {
		out.Content = parsed.Choices[0].Message.Content
		out.Sources.Citations = parsed.Choices[0].Message.Citations
	}
	return out, nil
}
