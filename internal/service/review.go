package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/moshiurrahman/portfolio-api/internal/domain"
)

// ReviewRepositoryInterface defines the review store used by ReviewService.
type ReviewRepositoryInterface interface {
	Create(ctx context.Context, review *domain.Review) error
	List(ctx context.Context) ([]*domain.Review, error)
	Stats(ctx context.Context) (*domain.ReviewStats, error)
	Delete(ctx context.Context, id string) error
}

// ReviewService handles visitor testimonials.
type ReviewService struct {
	repo    ReviewRepositoryInterface
	uuidGen UUIDGenerator
	clock   Clock
}

func NewReviewService(repo ReviewRepositoryInterface) *ReviewService {
	return &ReviewService{repo: repo, uuidGen: &DefaultUUIDGenerator{}, clock: UTCClock{}}
}

func NewReviewServiceWithDeps(repo ReviewRepositoryInterface, uuidGen UUIDGenerator, clock Clock) *ReviewService {
	return &ReviewService{repo: repo, uuidGen: uuidGen, clock: clock}
}

// CreateReviewInput carries the writable review fields.
type CreateReviewInput struct {
	Name    string
	Rating  int
	Comment string
}

func (s *ReviewService) Create(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	review := &domain.Review{
		ID:        s.uuidGen.NewString(),
		Name:      input.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: s.clock.Now(),
	}
	if err := domain.ValidateReview(review); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) List(ctx context.Context) ([]*domain.Review, error) {
	return s.repo.List(ctx)
}

func (s *ReviewService) Stats(ctx context.Context) (*domain.ReviewStats, error) {
	return s.repo.Stats(ctx)
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrReviewNotFound
	}
	return s.repo.Delete(ctx, id)
}
