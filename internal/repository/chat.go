package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/pagination"
)

// ChatRepository is the conversation store. Each session row keeps its
// ordered message list as a JSONB array so an append is a single
// `messages || $n` update that cannot clobber a concurrent append.
type ChatRepository struct {
	db dbtx
}

func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: pool}
}

func NewChatRepositoryWithTx(tx pgx.Tx) *ChatRepository {
	return &ChatRepository{db: tx}
}

func (r *ChatRepository) Create(ctx context.Context, s *domain.ChatSession) error {
	messages, err := json.Marshal(s.Messages)
	if err != nil {
		return fmt.Errorf("failed to encode messages: %w", err)
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO chat_sessions (id, title, mode, messages, created_at, updated_at, last_accessed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Title, s.Mode, messages, s.CreatedAt, s.UpdatedAt, s.LastAccessedAt,
	)
	return err
}

func (r *ChatRepository) GetByID(ctx context.Context, id string) (*domain.ChatSession, error) {
	var s domain.ChatSession
	var messages []byte
	err := r.db.QueryRow(ctx,
		`SELECT id, title, mode, messages, created_at, updated_at, last_accessed_at
		 FROM chat_sessions WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Title, &s.Mode, &messages, &s.CreatedAt, &s.UpdatedAt, &s.LastAccessedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChatNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(messages, &s.Messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return &s, nil
}

// AppendMessages appends a complete user/assistant pair and bumps updated_at.
func (r *ChatRepository) AppendMessages(ctx context.Context, id string, msgs []domain.Message, updatedAt time.Time) error {
	encoded, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("failed to encode messages: %w", err)
	}
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE chat_sessions SET messages = messages || $1::jsonb, updated_at = $2 WHERE id = $3`,
		encoded, updatedAt, id,
	)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrChatNotFound
	}
	return nil
}

// Touch refreshes last_accessed_at.
func (r *ChatRepository) Touch(ctx context.Context, id string, accessedAt time.Time) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE chat_sessions SET last_accessed_at = $1 WHERE id = $2`,
		accessedAt, id,
	)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrChatNotFound
	}
	return nil
}

// List returns session summaries newest-first with offset/limit paging and a
// total count. A non-empty search filters by case-insensitive substring match
// against the title or any message text.
func (r *ChatRepository) List(ctx context.Context, search string, page pagination.Page) (*pagination.PageResult[domain.ChatSummary], error) {
	page = page.Normalize()

	where := ""
	args := []any{}
	if search != "" {
		where = ` WHERE title ILIKE $1 OR EXISTS (
			SELECT 1 FROM jsonb_array_elements(messages) AS m
			WHERE m->>'text' ILIKE $1)`
		args = append(args, "%"+escapeLike(search)+"%")
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM chat_sessions`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	query := `SELECT id, title, mode, created_at, updated_at, last_accessed_at
		 FROM chat_sessions` + where +
		fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, page.Limit, page.Skip)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.ChatSummary{}
	for rows.Next() {
		var s domain.ChatSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Mode, &s.CreatedAt, &s.UpdatedAt, &s.LastAccessedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &pagination.PageResult[domain.ChatSummary]{
		Items: items,
		Total: total,
		Limit: page.Limit,
		Skip:  page.Skip,
	}, nil
}

func (r *ChatRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM chat_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrChatNotFound
	}
	return nil
}

// DeleteMany removes all sessions whose ids appear in ids and returns how
// many rows were deleted.
func (r *ChatRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM chat_sessions WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}

// Count returns the number of stored sessions.
func (r *ChatRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM chat_sessions`).Scan(&total)
	return total, err
}
