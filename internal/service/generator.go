package service

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/openrouter"
)

// ChatCompleter is the model transport used by the generators.
type ChatCompleter interface {
	Complete(ctx context.Context, req openrouter.CompletionRequest) (string, error)
}

const (
	// historyWindow is the hard sliding window over conversation history.
	// Older turns are dropped, not summarized.
	historyWindow = 10
	// minHelpfulLength is the shortest reply that counts as an answer.
	minHelpfulLength = 10

	replyMaxTokens   = 1000
	replyTemperature = 0.7

	emptyReplyFallback = "I'm sorry, I couldn't generate a response at the moment. Please try again."
)

// unhelpfulSignals flag a restricted-mode reply as a non-answer. Matched as
// lowercase substrings anywhere in the reply.
var unhelpfulSignals = []string{
	"not available",
	"cannot answer",
	"not in the json",
	"don't have",
	"unavailable",
}

// GeneratorConfig selects the models used for the primary and fallback calls.
type GeneratorConfig struct {
	Model         string
	FallbackModel string
}

// ResponseGenerator produces the assistant reply for a chat turn, retrying
// once in general mode when a restricted-mode reply looks unhelpful.
type ResponseGenerator struct {
	llm     ChatCompleter
	prompts *PromptSet
	cfg     GeneratorConfig
}

func NewResponseGenerator(llm ChatCompleter, prompts *PromptSet, cfg GeneratorConfig) *ResponseGenerator {
	return &ResponseGenerator{llm: llm, prompts: prompts, cfg: cfg}
}

// GenerateReply calls the model with the system prompt for mode plus the last
// ten turns of history. The newest user message must already be the final
// element of history.
func (g *ResponseGenerator) GenerateReply(ctx context.Context, history []domain.Message, mode domain.Mode) (string, error) {
	trimmed := trimHistory(history, historyWindow)

	reply, err := g.complete(ctx, g.cfg.Model, g.prompts.SystemPrompt(mode), trimmed)
	if err != nil {
		return "", err
	}

	if mode == domain.ModeMoshiur && looksUnhelpful(reply) {
		log.Println("restricted mode reply looked unhelpful, trying general fallback")
		fallback, fallbackErr := g.complete(ctx, g.cfg.FallbackModel, g.prompts.SystemPrompt(domain.ModeGeneral), trimmed)
		if fallbackErr != nil {
			log.Printf("fallback call failed, keeping original reply: %v", fallbackErr)
		} else if utf8.RuneCountInString(fallback) > minHelpfulLength {
			reply = fallback
		}
	}

	if reply == "" {
		return emptyReplyFallback, nil
	}
	return reply, nil
}

func (g *ResponseGenerator) complete(ctx context.Context, model, systemPrompt string, history []domain.Message) (string, error) {
	messages := make([]openrouter.Message, 0, len(history)+1)
	messages = append(messages, openrouter.Message{Role: openrouter.RoleSystem, Content: systemPrompt})
	for _, m := range history {
		messages = append(messages, openrouter.Message{Role: senderRole(m.Sender), Content: m.Text})
	}

	return g.llm.Complete(ctx, openrouter.CompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemperature,
	})
}

func trimHistory(history []domain.Message, window int) []domain.Message {
	if len(history) <= window {
		return history
	}
	return history[len(history)-window:]
}

func looksUnhelpful(reply string) bool {
	if utf8.RuneCountInString(reply) < minHelpfulLength {
		return true
	}
	lowered := strings.ToLower(reply)
	for _, signal := range unhelpfulSignals {
		if strings.Contains(lowered, signal) {
			return true
		}
	}
	return false
}

func senderRole(s domain.Sender) string {
	if s == domain.SenderUser {
		return openrouter.RoleUser
	}
	return openrouter.RoleAssistant
}
