package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
)

// CommandRepository persists the global assistant command history.
type CommandRepository struct {
	db dbtx
}

func NewCommandRepository(pool *pgxpool.Pool) *CommandRepository {
	return &CommandRepository{db: pool}
}

func (r *CommandRepository) Create(ctx context.Context, c *domain.Command) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ai_commands (id, command, response, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Command, c.Response, c.CreatedAt,
	)
	return err
}

// List returns the full history oldest-first.
func (r *CommandRepository) List(ctx context.Context) ([]*domain.Command, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, command, response, created_at FROM ai_commands ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCommands(rows)
}

// Recent returns the newest n entries in chronological order.
func (r *CommandRepository) Recent(ctx context.Context, n int) ([]*domain.Command, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, command, response, created_at FROM ai_commands ORDER BY created_at DESC LIMIT $1`,
		n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	commands, err := scanCommands(rows)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(commands)-1; i < j; i, j = i+1, j-1 {
		commands[i], commands[j] = commands[j], commands[i]
	}
	return commands, nil
}

func scanCommands(rows pgx.Rows) ([]*domain.Command, error) {
	var commands []*domain.Command
	for rows.Next() {
		var c domain.Command
		if err := rows.Scan(&c.ID, &c.Command, &c.Response, &c.CreatedAt); err != nil {
			return nil, err
		}
		commands = append(commands, &c)
	}
	return commands, rows.Err()
}
