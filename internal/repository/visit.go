package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
)

type VisitRepository struct {
	db dbtx
}

func NewVisitRepository(pool *pgxpool.Pool) *VisitRepository {
	return &VisitRepository{db: pool}
}

func (r *VisitRepository) Create(ctx context.Context, v *domain.Visit) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO visits (id, ip, user_agent, visited_at) VALUES ($1, $2, $3, $4)`,
		v.ID, v.IP, v.UserAgent, v.VisitedAt,
	)
	return err
}

// CountBetween counts visits with start <= visited_at < end.
func (r *VisitRepository) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM visits WHERE visited_at >= $1 AND visited_at < $2`,
		start, end,
	).Scan(&count)
	return count, err
}
