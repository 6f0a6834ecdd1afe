package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
)

// CommentRepositoryInterface defines the comment store used by CommentService.
type CommentRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByBlog(ctx context.Context, blogID string) ([]*domain.Comment, error)
	ToggleLike(ctx context.Context, commentID, userID string, now time.Time) (bool, error)
	LikeCount(ctx context.Context, commentID string) (int64, error)
	Liked(ctx context.Context, commentID, userID string) (bool, error)
}

// CommentService handles blog comments and their per-user likes.
type CommentService struct {
	repo    CommentRepositoryInterface
	uuidGen UUIDGenerator
	clock   Clock
}

func NewCommentService(repo CommentRepositoryInterface) *CommentService {
	return &CommentService{repo: repo, uuidGen: &DefaultUUIDGenerator{}, clock: UTCClock{}}
}

func NewCommentServiceWithDeps(repo CommentRepositoryInterface, uuidGen UUIDGenerator, clock Clock) *CommentService {
	return &CommentService{repo: repo, uuidGen: uuidGen, clock: clock}
}

// CreateCommentInput carries the writable comment fields.
type CreateCommentInput struct {
	BlogID   string
	Username string
	Content  string
}

// LikeStatus reports a comment's like state for one user.
type LikeStatus struct {
	Liked bool
	Count int64
}

func (s *CommentService) Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	comment := &domain.Comment{
		ID:        s.uuidGen.NewString(),
		BlogID:    input.BlogID,
		Username:  input.Username,
		Content:   input.Content,
		CreatedAt: s.clock.Now(),
	}
	if err := domain.ValidateComment(comment); err != nil {
		return nil, err
	}
	if err := parseBlogID(comment.BlogID); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) ListByBlog(ctx context.Context, blogID string) ([]*domain.Comment, error) {
	if err := parseBlogID(blogID); err != nil {
		return nil, err
	}
	return s.repo.ListByBlog(ctx, blogID)
}

// ToggleLike flips the user's like on a comment and returns the new state.
func (s *CommentService) ToggleLike(ctx context.Context, commentID, userID string) (*LikeStatus, error) {
	if _, err := uuid.Parse(commentID); err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "invalid comment id")
	}
	if userID == "" {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "userId is required")
	}

	liked, err := s.repo.ToggleLike(ctx, commentID, userID, s.clock.Now())
	if err != nil {
		return nil, err
	}
	count, err := s.repo.LikeCount(ctx, commentID)
	if err != nil {
		return nil, err
	}
	return &LikeStatus{Liked: liked, Count: count}, nil
}

// Status reports whether the user liked the comment and the total like count.
func (s *CommentService) Status(ctx context.Context, commentID, userID string) (*LikeStatus, error) {
	if _, err := uuid.Parse(commentID); err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeValidation, "invalid comment id")
	}

	count, err := s.repo.LikeCount(ctx, commentID)
	if err != nil {
		return nil, err
	}
	liked := false
	if userID != "" {
		liked, err = s.repo.Liked(ctx, commentID, userID)
		if err != nil {
			return nil, err
		}
	}
	return &LikeStatus{Liked: liked, Count: count}, nil
}
