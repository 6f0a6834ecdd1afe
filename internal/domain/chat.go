package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Mode selects the assistant persona for a chat turn.
type Mode string

const (
	// ModeMoshiur restricts the assistant to the static profile document.
	ModeMoshiur Mode = "moshiur"
	// ModeGeneral is the unrestricted, general-purpose persona.
	ModeGeneral Mode = "general"
)

// ParseMode validates a raw mode string.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModeMoshiur, ModeGeneral:
		return Mode(raw), nil
	}
	return "", ErrInvalidMode
}

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// MaxMessageLength is the upper bound, in characters, for user-authored
// message text. Assistant output is not limited.
const MaxMessageLength = 1000

// Message is a single turn inside a chat session. Messages are owned by
// their session and never referenced elsewhere.
type Message struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession is one conversation: an append-only ordered message list plus
// metadata. At rest the message list always has even cardinality, because a
// user message and its assistant reply are persisted together or not at all.
type ChatSession struct {
	ID             string
	Title          string
	Mode           Mode
	Messages       []Message
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastAccessedAt time.Time
}

// ChatSummary is the listing projection of a session (no message bodies).
type ChatSummary struct {
	ID             string
	Title          string
	Mode           Mode
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastAccessedAt time.Time
}

// ValidateUserMessage checks the constraints on user-authored text.
func ValidateUserMessage(text string) error {
	if text == "" {
		return ErrMessageRequired
	}
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return nil
}

// ValidateChatSession validates a session before persistence.
func ValidateChatSession(s *ChatSession) error {
	if s == nil {
		return fmt.Errorf("chat session cannot be nil")
	}
	if s.ID == "" {
		return fmt.Errorf("chat session ID is required")
	}
	if _, err := ParseMode(string(s.Mode)); err != nil {
		return err
	}
	if len(s.Messages)%2 != 0 {
		return fmt.Errorf("chat session must hold complete message pairs, got %d messages", len(s.Messages))
	}
	return nil
}

// Summary returns the listing projection of the session.
func (s *ChatSession) Summary() ChatSummary {
	return ChatSummary{
		ID:             s.ID,
		Title:          s.Title,
		Mode:           s.Mode,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		LastAccessedAt: s.LastAccessedAt,
	}
}
