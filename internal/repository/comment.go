package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
)

type CommentRepository struct {
	db dbtx
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO comments (id, blog_id, username, content, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.BlogID, c.Username, c.Content, c.CreatedAt,
	)
	if isForeignKeyViolation(err) {
		return domain.ErrBlogNotFound
	}
	return err
}

func (r *CommentRepository) ListByBlog(ctx context.Context, blogID string) ([]*domain.Comment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, blog_id, username, content, created_at
		 FROM comments WHERE blog_id = $1 ORDER BY created_at DESC`,
		blogID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.BlogID, &c.Username, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// ToggleLike likes the comment for userID, or removes an existing like.
// Returns true when the comment ends up liked.
func (r *CommentRepository) ToggleLike(ctx context.Context, commentID, userID string, now time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT true FROM comment_likes WHERE comment_id = $1 AND user_id = $2`,
		commentID, userID,
	).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	if exists {
		_, err := r.db.Exec(ctx,
			`DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`,
			commentID, userID,
		)
		return false, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO comment_likes (comment_id, user_id, created_at) VALUES ($1, $2, $3)
		 ON CONFLICT (comment_id, user_id) DO NOTHING`,
		commentID, userID, now,
	)
	if isForeignKeyViolation(err) {
		return false, domain.ErrCommentNotFound
	}
	return true, err
}

func (r *CommentRepository) LikeCount(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1`,
		commentID,
	).Scan(&count)
	return count, err
}

func (r *CommentRepository) Liked(ctx context.Context, commentID, userID string) (bool, error) {
	var liked bool
	err := r.db.QueryRow(ctx,
		`SELECT true FROM comment_likes WHERE comment_id = $1 AND user_id = $2`,
		commentID, userID,
	).Scan(&liked)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return liked, err
}
