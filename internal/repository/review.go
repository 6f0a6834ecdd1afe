package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
)

type ReviewRepository struct {
	db dbtx
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: pool}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reviews (id, name, rating, comment, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		review.ID, review.Name, review.Rating, review.Comment, review.CreatedAt,
	)
	return err
}

func (r *ReviewRepository) List(ctx context.Context) ([]*domain.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, rating, comment, created_at FROM reviews ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(&review.ID, &review.Name, &review.Rating, &review.Comment, &review.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}
	return reviews, rows.Err()
}

// Stats returns the average rating (one decimal place) and review count.
func (r *ReviewRepository) Stats(ctx context.Context) (*domain.ReviewStats, error) {
	var avg float64
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews`,
	).Scan(&avg, &count)
	if err != nil {
		return nil, err
	}
	return &domain.ReviewStats{
		Avg:   fmt.Sprintf("%.1f", avg),
		Count: count,
	}, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
