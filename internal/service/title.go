package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/moshiurrahman/portfolio-api/internal/openrouter"
)

const (
	titleMaxTokens   = 20
	titleTemperature = 0.5
	titleMaxLength   = 50
)

// TitleGenerator summarizes the first user message into a short session
// label. It is best-effort: any failure yields a deterministic dated
// placeholder so title quality never blocks chat creation.
type TitleGenerator struct {
	llm   ChatCompleter
	model string
	clock Clock
}

func NewTitleGenerator(llm ChatCompleter, model string, clock Clock) *TitleGenerator {
	return &TitleGenerator{llm: llm, model: model, clock: clock}
}

// GenerateTitle returns a 3-5 word title for the conversation. Never fails.
func (t *TitleGenerator) GenerateTitle(ctx context.Context, firstUserMessage string) string {
	raw, err := t.llm.Complete(ctx, openrouter.CompletionRequest{
		Model: t.model,
		Messages: []openrouter.Message{
			{
				Role:    openrouter.RoleSystem,
				Content: "Generate a very short title (3-5 words) for the conversation based on the user's message.",
			},
			{
				Role:    openrouter.RoleUser,
				Content: fmt.Sprintf("Create a title for: %q", firstUserMessage),
			},
		},
		MaxTokens:   titleMaxTokens,
		Temperature: titleTemperature,
	})
	if err != nil {
		log.Printf("title generation failed: %v", err)
		return t.fallbackTitle()
	}

	title := strings.TrimSpace(strings.NewReplacer(`"`, "", `'`, "", `.`, "").Replace(raw))
	if title == "" {
		return "Untitled Chat"
	}
	if runes := []rune(title); len(runes) > titleMaxLength {
		title = string(runes[:titleMaxLength-3]) + "..."
	}
	return title
}

func (t *TitleGenerator) fallbackTitle() string {
	return "Chat " + t.clock.Now().Format("1/2/2006")
}
