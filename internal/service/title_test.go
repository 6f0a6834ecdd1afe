package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleGenerator_GenerateTitle(t *testing.T) {
	ctx := context.Background()
	clock := fixedClock{time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)}

	t.Run("strips quotes and periods", func(t *testing.T) {
		llm := &fakeCompleter{replies: []string{`"Portfolio Questions."`}}
		gen := NewTitleGenerator(llm, "title-model", clock)

		title := gen.GenerateTitle(ctx, "tell me about the portfolio")

		assert.Equal(t, "Portfolio Questions", title)
	})

	t.Run("truncates long titles", func(t *testing.T) {
		llm := &fakeCompleter{replies: []string{strings.Repeat("t", 60)}}
		gen := NewTitleGenerator(llm, "title-model", clock)

		title := gen.GenerateTitle(ctx, "message")

		assert.Len(t, []rune(title), titleMaxLength)
		assert.True(t, strings.HasSuffix(title, "..."))
	})

	t.Run("model failure yields dated placeholder", func(t *testing.T) {
		llm := &fakeCompleter{errs: []error{domain.ErrModelUnavailable}}
		gen := NewTitleGenerator(llm, "title-model", clock)

		title := gen.GenerateTitle(ctx, "message")

		assert.Equal(t, "Chat 3/7/2025", title)
	})

	t.Run("empty model output yields untitled", func(t *testing.T) {
		llm := &fakeCompleter{replies: []string{`"."`}}
		gen := NewTitleGenerator(llm, "title-model", clock)

		title := gen.GenerateTitle(ctx, "message")

		assert.Equal(t, "Untitled Chat", title)
	})

	t.Run("uses reduced token budget", func(t *testing.T) {
		llm := &fakeCompleter{replies: []string{"A Title"}}
		gen := NewTitleGenerator(llm, "title-model", clock)

		gen.GenerateTitle(ctx, "message")

		require.Len(t, llm.requests, 1)
		assert.Equal(t, titleMaxTokens, llm.requests[0].MaxTokens)
		assert.InDelta(t, titleTemperature, llm.requests[0].Temperature, 0.001)
		assert.Contains(t, llm.requests[0].Messages[1].Content, "message")
	})
}
