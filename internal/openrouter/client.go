// Package openrouter wraps the OpenRouter chat-completion API behind a small
// client with classified failure modes.
package openrouter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/moshiurrahman/portfolio-api/internal/domain"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultBaseURL is the OpenRouter OpenAI-compatible endpoint.
	DefaultBaseURL = "https://openrouter.ai/api/v1"
)

// ErrNoAPIKey is returned when no API key is configured.
var ErrNoAPIKey = errors.New("OPENROUTER_API_KEY not set")

// Message roles on the completion wire format.
const (
	RoleSystem    = openai.ChatMessageRoleSystem
	RoleUser      = openai.ChatMessageRoleUser
	RoleAssistant = openai.ChatMessageRoleAssistant
)

// Message is one role/content entry of a completion request.
type Message struct {
	Role    string
	Content string
}

// CompletionRequest describes a single chat-completion call.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

// CompletionAPI is the transport-level interface, satisfied by the go-openai
// client and by fakes in tests.
type CompletionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config holds client configuration.
type Config struct {
	APIKey  string
	BaseURL string
	// Referer and AppTitle fill the attribution headers OpenRouter expects.
	Referer  string
	AppTitle string
}

// Client calls the OpenRouter chat-completion endpoint.
type Client struct {
	api CompletionAPI
}

// NewClient creates a Client from config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	} else {
		apiCfg.BaseURL = DefaultBaseURL
	}
	apiCfg.HTTPClient = &http.Client{
		Transport: attributionTransport{
			base:     http.DefaultTransport,
			referer:  cfg.Referer,
			appTitle: cfg.AppTitle,
		},
	}

	return &Client{api: openai.NewClientWithConfig(apiCfg)}, nil
}

// NewClientWithAPI creates a Client over an explicit transport (for tests).
func NewClientWithAPI(api CompletionAPI) *Client {
	return &Client{api: api}
}

// Complete performs one chat-completion call and returns the trimmed text of
// the first choice. Errors are classified into the domain taxonomy.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", classifyError(err)
	}

	// Zero choices degrade to an empty reply; callers substitute their
	// own fallback text rather than failing the request.
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// classifyError maps transport errors onto the domain failure sub-kinds so
// the HTTP layer can distinguish rate-limit/quota (429) from the rest (500).
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return domain.NewDomainErrorWithCause(domain.ErrCodeRateLimited, domain.ErrModelRateLimited.Message, err)
		case apiErr.HTTPStatusCode == http.StatusPaymentRequired,
			strings.Contains(strings.ToLower(apiErr.Message), "quota"):
			return domain.NewDomainErrorWithCause(domain.ErrCodeQuotaExceeded, domain.ErrModelQuota.Message, err)
		case apiErr.HTTPStatusCode == http.StatusUnauthorized,
			apiErr.HTTPStatusCode == http.StatusForbidden:
			return domain.NewDomainErrorWithCause(domain.ErrCodeAuthFailed, domain.ErrModelAuthFailed.Message, err)
		case apiErr.HTTPStatusCode >= http.StatusInternalServerError:
			return domain.NewDomainErrorWithCause(domain.ErrCodeUpstreamUnavailable, domain.ErrModelUnavailable.Message, err)
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		switch {
		case reqErr.HTTPStatusCode == http.StatusTooManyRequests:
			return domain.NewDomainErrorWithCause(domain.ErrCodeRateLimited, domain.ErrModelRateLimited.Message, err)
		case reqErr.HTTPStatusCode == http.StatusUnauthorized:
			return domain.NewDomainErrorWithCause(domain.ErrCodeAuthFailed, domain.ErrModelAuthFailed.Message, err)
		case reqErr.HTTPStatusCode >= http.StatusInternalServerError:
			return domain.NewDomainErrorWithCause(domain.ErrCodeUpstreamUnavailable, domain.ErrModelUnavailable.Message, err)
		}
	}

	return domain.NewDomainErrorWithCause(domain.ErrCodeExternalError, domain.ErrModelCallFailed.Message, err)
}

// attributionTransport injects the HTTP-Referer and X-Title headers on every
// request, matching what OpenRouter uses for app attribution.
type attributionTransport struct {
	base     http.RoundTripper
	referer  string
	appTitle string
}

func (t attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.appTitle != "" {
		req.Header.Set("X-Title", t.appTitle)
	}
	return t.base.RoundTrip(req)
}
