//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)
	defer pc.Terminate(ctx)

	pool := testutil.NewTestPool(ctx, t, pc, "../../migrations")
	defer pool.Close()

	repo := NewBlogRepository(pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	blog := domain.NewBlog(uuid.NewString(), "Going Live", "body text", "Moshiur", "thumb.png", "devlog", []string{"go", "postgres"}, now)
	require.NoError(t, repo.Create(ctx, blog))

	t.Run("get roundtrip", func(t *testing.T) {
		got, err := repo.GetByID(ctx, blog.ID)
		require.NoError(t, err)
		assert.Equal(t, blog.Title, got.Title)
		assert.Equal(t, []string{"go", "postgres"}, got.Tags)
		assert.Equal(t, "devlog", got.Category)
		assert.Empty(t, got.Loves)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrBlogNotFound)
	})

	t.Run("update", func(t *testing.T) {
		blog.Title = "Going Live, Revised"
		blog.Tags = []string{"go"}
		blog.UpdatedAt = now.Add(time.Hour)
		require.NoError(t, repo.Update(ctx, blog))

		got, err := repo.GetByID(ctx, blog.ID)
		require.NoError(t, err)
		assert.Equal(t, "Going Live, Revised", got.Title)
		assert.Equal(t, []string{"go"}, got.Tags)
		assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	})

	t.Run("list newest first", func(t *testing.T) {
		newer := domain.NewBlog(uuid.NewString(), "Second Post", "more text", "", "", "", nil, now.Add(time.Hour))
		require.NoError(t, repo.Create(ctx, newer))

		blogs, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, blogs, 2)
		assert.Equal(t, "Second Post", blogs[0].Title)
		assert.Equal(t, "Anonymous", blogs[0].Author)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, blog.ID))
		assert.ErrorIs(t, repo.Delete(ctx, blog.ID), domain.ErrBlogNotFound)
	})
}

func TestBlogRepository_Loves(t *testing.T) {
	ctx := context.Background()
	pc := testutil.NewPostgresContainer(ctx, t)
	defer pc.Terminate(ctx)

	pool := testutil.NewTestPool(ctx, t, pc, "../../migrations")
	defer pool.Close()

	repo := NewBlogRepository(pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	blog := domain.NewBlog(uuid.NewString(), "Loved", "body", "", "", "", nil, now)
	require.NoError(t, repo.Create(ctx, blog))

	require.NoError(t, repo.SetLoves(ctx, blog.ID, []string{"visitor-1", "visitor-2"}, now.Add(time.Minute)))

	count, err := repo.LoveCount(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	loved, err := repo.LoveStatus(ctx, blog.ID, "visitor-1")
	require.NoError(t, err)
	assert.True(t, loved)

	loved, err = repo.LoveStatus(ctx, blog.ID, "visitor-9")
	require.NoError(t, err)
	assert.False(t, loved)

	t.Run("set bumps updated_at", func(t *testing.T) {
		got, err := repo.GetByID(ctx, blog.ID)
		require.NoError(t, err)
		assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	})

	t.Run("unknown blog reports zero", func(t *testing.T) {
		count, err := repo.LoveCount(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Zero(t, count)

		loved, err := repo.LoveStatus(ctx, uuid.NewString(), "visitor-1")
		require.NoError(t, err)
		assert.False(t, loved)
	})

	t.Run("set on unknown blog", func(t *testing.T) {
		err := repo.SetLoves(ctx, uuid.NewString(), []string{"visitor-1"}, now)
		assert.ErrorIs(t, err, domain.ErrBlogNotFound)
	})
}
