package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
	"github.com/moshiurrahman/portfolio-api/internal/telemetry"
)

// BlogRepositoryInterface defines the blog store used by BlogService.
type BlogRepositoryInterface interface {
	Create(ctx context.Context, b *domain.Blog) error
	GetByID(ctx context.Context, id string) (*domain.Blog, error)
	List(ctx context.Context) ([]domain.Blog, error)
	Update(ctx context.Context, b *domain.Blog) error
	Delete(ctx context.Context, id string) error
	SetLoves(ctx context.Context, id string, loves []string, updatedAt time.Time) error
	LoveCount(ctx context.Context, id string) (int, error)
	LoveStatus(ctx context.Context, id, visitorID string) (bool, error)
}

// BlogService handles blog CRUD and the per-visitor love toggle.
type BlogService struct {
	repo    BlogRepositoryInterface
	uuidGen UUIDGenerator
	clock   Clock
}

func NewBlogService(repo BlogRepositoryInterface) *BlogService {
	return &BlogService{repo: repo, uuidGen: &DefaultUUIDGenerator{}, clock: UTCClock{}}
}

func NewBlogServiceWithDeps(repo BlogRepositoryInterface, uuidGen UUIDGenerator, clock Clock) *BlogService {
	return &BlogService{repo: repo, uuidGen: uuidGen, clock: clock}
}

// CreateBlogInput carries the writable blog fields.
type CreateBlogInput struct {
	Title     string
	Content   string
	Author    string
	Tags      []string
	Thumbnail string
	Category  string
}

// UpdateBlogInput updates a blog in place. Empty fields keep current values.
type UpdateBlogInput struct {
	ID        string
	Title     string
	Content   string
	Author    string
	Tags      []string
	Thumbnail string
	Category  string
}

// LoveResult reports the state after a toggle.
type LoveResult struct {
	Loved bool
	Count int
}

func (s *BlogService) Create(ctx context.Context, input CreateBlogInput) (*domain.Blog, error) {
	ctx, span := telemetry.StartSpan(ctx, "BlogService.Create", telemetry.SpanAttributes{
		Operation: "create",
	})
	defer span.End()

	blog := domain.NewBlog(s.uuidGen.NewString(), input.Title, input.Content, input.Author, input.Thumbnail, input.Category, input.Tags, s.clock.Now())
	if err := domain.ValidateBlog(blog); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, blog); err != nil {
		span.SetError(err)
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (*domain.Blog, error) {
	if err := parseBlogID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *BlogService) List(ctx context.Context) ([]domain.Blog, error) {
	return s.repo.List(ctx)
}

func (s *BlogService) Update(ctx context.Context, input UpdateBlogInput) (*domain.Blog, error) {
	ctx, span := telemetry.StartSpan(ctx, "BlogService.Update", telemetry.SpanAttributes{
		BlogID:    input.ID,
		Operation: "update",
	})
	defer span.End()

	if err := parseBlogID(input.ID); err != nil {
		return nil, err
	}

	blog, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		blog.Title = input.Title
	}
	if input.Content != "" {
		blog.Content = input.Content
	}
	if input.Author != "" {
		blog.Author = input.Author
	}
	if input.Tags != nil {
		blog.Tags = input.Tags
	}
	if input.Thumbnail != "" {
		blog.Thumbnail = input.Thumbnail
	}
	if input.Category != "" {
		blog.Category = input.Category
	}
	blog.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, blog); err != nil {
		span.SetError(err)
		return nil, err
	}
	return blog, nil
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	ctx, span := telemetry.StartSpan(ctx, "BlogService.Delete", telemetry.SpanAttributes{
		BlogID:    id,
		Operation: "delete",
	})
	defer span.End()

	if err := parseBlogID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ToggleLove flips the visitor's love on a blog and returns the new state.
func (s *BlogService) ToggleLove(ctx context.Context, blogID, visitorID string) (*LoveResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "BlogService.ToggleLove", telemetry.SpanAttributes{
		BlogID:    blogID,
		Operation: "toggle_love",
	})
	defer span.End()

	if err := parseBlogID(blogID); err != nil {
		return nil, err
	}
	if visitorID == "" {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "userId is required")
	}

	blog, err := s.repo.GetByID(ctx, blogID)
	if err != nil {
		return nil, err
	}

	loves := blog.Loves
	loved := false
	if idx := indexOf(loves, visitorID); idx >= 0 {
		loves = append(loves[:idx], loves[idx+1:]...)
	} else {
		loves = append(loves, visitorID)
		loved = true
	}

	if err := s.repo.SetLoves(ctx, blogID, loves, s.clock.Now()); err != nil {
		span.SetError(err)
		return nil, err
	}

	return &LoveResult{Loved: loved, Count: len(loves)}, nil
}

// LoveCount returns how many visitors loved a blog.
func (s *BlogService) LoveCount(ctx context.Context, blogID string) (int, error) {
	if err := parseBlogID(blogID); err != nil {
		return 0, err
	}
	return s.repo.LoveCount(ctx, blogID)
}

// LoveStatus reports whether a visitor has loved a blog.
func (s *BlogService) LoveStatus(ctx context.Context, blogID, visitorID string) (bool, error) {
	if err := parseBlogID(blogID); err != nil {
		return false, err
	}
	if visitorID == "" {
		return false, nil
	}
	return s.repo.LoveStatus(ctx, blogID, visitorID)
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

// parseBlogID rejects malformed blog ids before touching the store.
func parseBlogID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.NewDomainError(domain.ErrCodeValidation, "invalid blog id")
	}
	return nil
}
