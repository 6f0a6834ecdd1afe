package service

import (
	"context"

	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/openrouter"
	"github.com/moshiurrahman/portfolio-api/internal/telemetry"
)

// CommandRepositoryInterface defines the shared command history store.
type CommandRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Command) error
	List(ctx context.Context) ([]*domain.Command, error)
	Recent(ctx context.Context, n int) ([]*domain.Command, error)
}

const (
	commandHistoryWindow = 10
	commandMaxTokens     = 500
	commandTemperature   = 0.7
)

// CommandService answers one-shot assistant commands against a single global
// history log, unlike the per-session chat flow.
type CommandService struct {
	repo    CommandRepositoryInterface
	llm     ChatCompleter
	prompts *PromptSet
	model   string
	uuidGen UUIDGenerator
	clock   Clock
}

func NewCommandService(repo CommandRepositoryInterface, llm ChatCompleter, prompts *PromptSet, model string) *CommandService {
	return &CommandService{
		repo:    repo,
		llm:     llm,
		prompts: prompts,
		model:   model,
		uuidGen: &DefaultUUIDGenerator{},
		clock:   UTCClock{},
	}
}

func NewCommandServiceWithDeps(repo CommandRepositoryInterface, llm ChatCompleter, prompts *PromptSet, model string, uuidGen UUIDGenerator, clock Clock) *CommandService {
	return &CommandService{
		repo:    repo,
		llm:     llm,
		prompts: prompts,
		model:   model,
		uuidGen: uuidGen,
		clock:   clock,
	}
}

// Answer runs one command against the model with the last ten history entries
// as context, then records the exchange.
func (s *CommandService) Answer(ctx context.Context, command string, mode domain.Mode) (*domain.Command, error) {
	ctx, span := telemetry.StartSpan(ctx, "CommandService.Answer", telemetry.SpanAttributes{
		Mode:      string(mode),
		Operation: "answer",
	})
	defer span.End()

	if command == "" {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "command is required")
	}

	recent, err := s.repo.Recent(ctx, commandHistoryWindow)
	if err != nil {
		return nil, err
	}

	messages := make([]openrouter.Message, 0, 2*len(recent)+2)
	messages = append(messages, openrouter.Message{Role: openrouter.RoleSystem, Content: s.prompts.CommandPrompt(mode)})
	for _, c := range recent {
		messages = append(messages, openrouter.Message{Role: openrouter.RoleUser, Content: c.Command})
		messages = append(messages, openrouter.Message{Role: openrouter.RoleAssistant, Content: c.Response})
	}
	messages = append(messages, openrouter.Message{Role: openrouter.RoleUser, Content: command})

	response, err := s.llm.Complete(ctx, openrouter.CompletionRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   commandMaxTokens,
		Temperature: commandTemperature,
	})
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	entry := &domain.Command{
		ID:        s.uuidGen.NewString(),
		Command:   command,
		Response:  response,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		span.SetError(err)
		return nil, err
	}
	return entry, nil
}

// Record stores a command/response pair verbatim, without a model call.
func (s *CommandService) Record(ctx context.Context, command, response string) (*domain.Command, error) {
	if command == "" || response == "" {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "command and response are required")
	}

	entry := &domain.Command{
		ID:        s.uuidGen.NewString(),
		Command:   command,
		Response:  response,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// History returns the full command log oldest-first.
func (s *CommandService) History(ctx context.Context) ([]*domain.Command, error) {
	return s.repo.List(ctx)
}
