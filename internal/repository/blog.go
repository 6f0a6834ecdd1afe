package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
)

type BlogRepository struct {
	db dbtx
}

func NewBlogRepository(pool *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{db: pool}
}

func NewBlogRepositoryWithTx(tx pgx.Tx) *BlogRepository {
	return &BlogRepository{db: tx}
}

func (r *BlogRepository) Create(ctx context.Context, b *domain.Blog) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO blogs (id, title, content, author, tags, thumbnail, category, loves, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		b.ID, b.Title, b.Content, b.Author, b.Tags, b.Thumbnail, b.Category, b.Loves, b.CreatedAt, b.UpdatedAt,
	)
	return err
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*domain.Blog, error) {
	var b domain.Blog
	err := r.db.QueryRow(ctx,
		`SELECT id, title, content, author, tags, thumbnail, category, loves, created_at, updated_at
		 FROM blogs WHERE id = $1`,
		id,
	).Scan(&b.ID, &b.Title, &b.Content, &b.Author, &b.Tags, &b.Thumbnail, &b.Category, &b.Loves, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BlogRepository) List(ctx context.Context) ([]domain.Blog, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, content, author, tags, thumbnail, category, loves, created_at, updated_at
		 FROM blogs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []domain.Blog{}
	for rows.Next() {
		var b domain.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.Author, &b.Tags, &b.Thumbnail, &b.Category, &b.Loves, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

func (r *BlogRepository) Update(ctx context.Context, b *domain.Blog) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE blogs SET title = $1, content = $2, author = $3, tags = $4, thumbnail = $5, category = $6, updated_at = $7
		 WHERE id = $8`,
		b.Title, b.Content, b.Author, b.Tags, b.Thumbnail, b.Category, b.UpdatedAt, b.ID,
	)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

// SetLoves replaces the love list after a toggle.
func (r *BlogRepository) SetLoves(ctx context.Context, id string, loves []string, updatedAt time.Time) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE blogs SET loves = $1, updated_at = $2 WHERE id = $3`,
		loves, updatedAt, id,
	)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

// LoveCount returns the number of loves on a blog, 0 for unknown blogs.
func (r *BlogRepository) LoveCount(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT cardinality(loves) FROM blogs WHERE id = $1`, id).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return count, err
}

// LoveStatus reports whether visitorID loved the blog, false for unknown blogs.
func (r *BlogRepository) LoveStatus(ctx context.Context, id, visitorID string) (bool, error) {
	var loved bool
	err := r.db.QueryRow(ctx,
		`SELECT $2 = ANY(loves) FROM blogs WHERE id = $1`,
		id, visitorID,
	).Scan(&loved)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return loved, err
}
