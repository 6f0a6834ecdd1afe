package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("moshiur")
	require.NoError(t, err)
	assert.Equal(t, ModeMoshiur, mode)

	mode, err = ParseMode("general")
	require.NoError(t, err)
	assert.Equal(t, ModeGeneral, mode)

	_, err = ParseMode("pirate")
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = ParseMode("")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestValidateUserMessage(t *testing.T) {
	assert.NoError(t, ValidateUserMessage("hello"))
	assert.NoError(t, ValidateUserMessage(strings.Repeat("a", MaxMessageLength)))
	// limit counts characters, not bytes
	assert.NoError(t, ValidateUserMessage(strings.Repeat("ঢ", MaxMessageLength)))

	assert.ErrorIs(t, ValidateUserMessage(""), ErrMessageRequired)
	assert.ErrorIs(t, ValidateUserMessage(strings.Repeat("a", MaxMessageLength+1)), ErrMessageTooLong)
	assert.ErrorIs(t, ValidateUserMessage(strings.Repeat("ঢ", MaxMessageLength+1)), ErrMessageTooLong)
}

func TestValidateChatSession(t *testing.T) {
	valid := &ChatSession{
		ID:   "6ba7b810-9dad-11d1-80b4-00c04fd430c1",
		Mode: ModeGeneral,
		Messages: []Message{
			{Sender: SenderUser, Text: "q"},
			{Sender: SenderAssistant, Text: "a"},
		},
	}
	assert.NoError(t, ValidateChatSession(valid))

	t.Run("odd message count is rejected", func(t *testing.T) {
		odd := *valid
		odd.Messages = valid.Messages[:1]
		assert.Error(t, ValidateChatSession(&odd))
	})

	t.Run("missing id is rejected", func(t *testing.T) {
		noID := *valid
		noID.ID = ""
		assert.Error(t, ValidateChatSession(&noID))
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		badMode := *valid
		badMode.Mode = "pirate"
		assert.Error(t, ValidateChatSession(&badMode))
	})

	t.Run("empty session is valid", func(t *testing.T) {
		empty := *valid
		empty.Messages = nil
		assert.NoError(t, ValidateChatSession(&empty))
	})
}

func TestChatSessionSummary(t *testing.T) {
	s := &ChatSession{
		ID:    "id",
		Title: "Title",
		Mode:  ModeMoshiur,
		Messages: []Message{
			{Sender: SenderUser, Text: "q"},
			{Sender: SenderAssistant, Text: "a"},
		},
	}

	summary := s.Summary()
	assert.Equal(t, "id", summary.ID)
	assert.Equal(t, "Title", summary.Title)
	assert.Equal(t, ModeMoshiur, summary.Mode)
}
