package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/pagination"
	"github.com/moshiurrahman/portfolio-api/internal/telemetry"
)

// ChatRepositoryInterface defines the conversation store used by ChatService.
type ChatRepositoryInterface interface {
	Create(ctx context.Context, s *domain.ChatSession) error
	GetByID(ctx context.Context, id string) (*domain.ChatSession, error)
	AppendMessages(ctx context.Context, id string, msgs []domain.Message, updatedAt time.Time) error
	Touch(ctx context.Context, id string, accessedAt time.Time) error
	List(ctx context.Context, search string, page pagination.Page) (*pagination.PageResult[domain.ChatSummary], error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

// ReplyGenerator produces an assistant reply for a turn.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, history []domain.Message, mode domain.Mode) (string, error)
}

// TitleMaker labels a new session from its first user message. Best-effort.
type TitleMaker interface {
	GenerateTitle(ctx context.Context, firstUserMessage string) string
}

// ChatService orchestrates chat sessions: validation, reply generation with
// fallback, titling, and persistence. Generation failure aborts before any
// write, so stored sessions always hold complete message pairs.
type ChatService struct {
	repo      ChatRepositoryInterface
	generator ReplyGenerator
	titles    TitleMaker
	uuidGen   UUIDGenerator
	clock     Clock
}

func NewChatService(repo ChatRepositoryInterface, generator ReplyGenerator, titles TitleMaker) *ChatService {
	return &ChatService{
		repo:      repo,
		generator: generator,
		titles:    titles,
		uuidGen:   &DefaultUUIDGenerator{},
		clock:     UTCClock{},
	}
}

// NewChatServiceWithDeps creates a ChatService with explicit id and clock
// sources (for testing).
func NewChatServiceWithDeps(repo ChatRepositoryInterface, generator ReplyGenerator, titles TitleMaker, uuidGen UUIDGenerator, clock Clock) *ChatService {
	return &ChatService{
		repo:      repo,
		generator: generator,
		titles:    titles,
		uuidGen:   uuidGen,
		clock:     clock,
	}
}

// CreateChatInput is the input for starting a new session.
type CreateChatInput struct {
	Message string
	Mode    string
}

// AppendMessageInput is the input for adding a turn to a session.
type AppendMessageInput struct {
	ChatID  string
	Message string
	Mode    string
}

// ListChatsInput filters and pages the session listing.
type ListChatsInput struct {
	Search string
	Limit  int
	Skip   int
}

// BulkDeleteResult reports the outcome of a bulk delete per id class.
type BulkDeleteResult struct {
	Deleted    int64
	InvalidIDs []string
}

// Create starts a new session from the first user message. The session is
// persisted only after reply generation succeeds; the title call never blocks
// creation.
func (s *ChatService) Create(ctx context.Context, input CreateChatInput) (*domain.ChatSession, error) {
	ctx, span := telemetry.StartSpan(ctx, "ChatService.Create", telemetry.SpanAttributes{
		Mode:      input.Mode,
		Operation: "create",
	})
	defer span.End()

	mode, err := validateTurn(input.Message, input.Mode)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	userMsg := domain.Message{Sender: domain.SenderUser, Text: input.Message, Timestamp: now}

	reply, err := s.generator.GenerateReply(ctx, []domain.Message{userMsg}, mode)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	title := s.titles.GenerateTitle(ctx, input.Message)

	session := &domain.ChatSession{
		ID:    s.uuidGen.NewString(),
		Title: title,
		Mode:  mode,
		Messages: []domain.Message{
			userMsg,
			{Sender: domain.SenderAssistant, Text: reply, Timestamp: s.clock.Now()},
		},
		CreatedAt:      now,
		UpdatedAt:      now,
		LastAccessedAt: now,
	}

	if err := domain.ValidateChatSession(session); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, session); err != nil {
		span.SetError(err)
		return nil, err
	}

	return session, nil
}

// Append adds a user message and its generated reply to an existing session.
// Returns the assistant reply text. Nothing is written when generation fails.
func (s *ChatService) Append(ctx context.Context, input AppendMessageInput) (string, error) {
	ctx, span := telemetry.StartSpan(ctx, "ChatService.Append", telemetry.SpanAttributes{
		ChatID:    input.ChatID,
		Mode:      input.Mode,
		Operation: "append",
	})
	defer span.End()

	if err := parseChatID(input.ChatID); err != nil {
		return "", err
	}

	mode, err := validateTurn(input.Message, input.Mode)
	if err != nil {
		return "", err
	}

	session, err := s.repo.GetByID(ctx, input.ChatID)
	if err != nil {
		return "", err
	}

	userMsg := domain.Message{Sender: domain.SenderUser, Text: input.Message, Timestamp: s.clock.Now()}

	reply, err := s.generator.GenerateReply(ctx, append(session.Messages, userMsg), mode)
	if err != nil {
		span.SetError(err)
		return "", err
	}

	pair := []domain.Message{
		userMsg,
		{Sender: domain.SenderAssistant, Text: reply, Timestamp: s.clock.Now()},
	}
	if err := s.repo.AppendMessages(ctx, input.ChatID, pair, s.clock.Now()); err != nil {
		span.SetError(err)
		return "", err
	}

	return reply, nil
}

// Get loads a full session and refreshes its last-accessed time.
func (s *ChatService) Get(ctx context.Context, id string) (*domain.ChatSession, error) {
	ctx, span := telemetry.StartSpan(ctx, "ChatService.Get", telemetry.SpanAttributes{
		ChatID:    id,
		Operation: "get",
	})
	defer span.End()

	if err := parseChatID(id); err != nil {
		return nil, err
	}

	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	accessedAt := s.clock.Now()
	if err := s.repo.Touch(ctx, id, accessedAt); err != nil {
		return nil, err
	}
	session.LastAccessedAt = accessedAt

	return session, nil
}

// List returns session summaries newest-first.
func (s *ChatService) List(ctx context.Context, input ListChatsInput) (*pagination.PageResult[domain.ChatSummary], error) {
	ctx, span := telemetry.StartSpan(ctx, "ChatService.List", telemetry.SpanAttributes{
		Operation: "list",
	})
	defer span.End()

	return s.repo.List(ctx, input.Search, pagination.Page{Limit: input.Limit, Skip: input.Skip})
}

// Delete removes one session.
func (s *ChatService) Delete(ctx context.Context, id string) error {
	ctx, span := telemetry.StartSpan(ctx, "ChatService.Delete", telemetry.SpanAttributes{
		ChatID:    id,
		Operation: "delete",
	})
	defer span.End()

	if err := parseChatID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// BulkDelete removes many sessions, reporting malformed ids instead of
// failing the whole request.
func (s *ChatService) BulkDelete(ctx context.Context, ids []string) (*BulkDeleteResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "ChatService.BulkDelete", telemetry.SpanAttributes{
		Operation: "bulk_delete",
	})
	defer span.End()

	if len(ids) == 0 {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "chatIds are required")
	}

	var valid []string
	var invalid []string
	for _, id := range ids {
		if parseChatID(id) != nil {
			invalid = append(invalid, id)
			continue
		}
		valid = append(valid, id)
	}

	deleted, err := s.repo.DeleteMany(ctx, valid)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	return &BulkDeleteResult{Deleted: deleted, InvalidIDs: invalid}, nil
}

// validateTurn checks the shared user-message and mode constraints.
func validateTurn(message, rawMode string) (domain.Mode, error) {
	if message == "" || rawMode == "" {
		return "", domain.ErrMessageRequired
	}
	if err := domain.ValidateUserMessage(message); err != nil {
		return "", err
	}
	return domain.ParseMode(rawMode)
}

// parseChatID treats malformed ids the same as unknown ones.
func parseChatID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrChatNotFound
	}
	return nil
}
