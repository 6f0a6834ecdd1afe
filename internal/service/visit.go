package service

import (
	"context"
	"time"

	"github.com/moshiurrahman/portfolio-api/internal/domain"
)

// VisitRepositoryInterface defines the visit log used by VisitService.
type VisitRepositoryInterface interface {
	Create(ctx context.Context, v *domain.Visit) error
	CountBetween(ctx context.Context, start, end time.Time) (int64, error)
}

// VisitService logs page visits and answers the monthly counter.
type VisitService struct {
	repo    VisitRepositoryInterface
	uuidGen UUIDGenerator
	clock   Clock
}

func NewVisitService(repo VisitRepositoryInterface) *VisitService {
	return &VisitService{repo: repo, uuidGen: &DefaultUUIDGenerator{}, clock: UTCClock{}}
}

func NewVisitServiceWithDeps(repo VisitRepositoryInterface, uuidGen UUIDGenerator, clock Clock) *VisitService {
	return &VisitService{repo: repo, uuidGen: uuidGen, clock: clock}
}

// Record logs one visit.
func (s *VisitService) Record(ctx context.Context, ip, userAgent string) error {
	return s.repo.Create(ctx, &domain.Visit{
		ID:        s.uuidGen.NewString(),
		IP:        ip,
		UserAgent: userAgent,
		VisitedAt: s.clock.Now(),
	})
}

// MonthlyCount counts visits in the current calendar month, UTC.
func (s *VisitService) MonthlyCount(ctx context.Context) (int64, error) {
	now := s.clock.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return s.repo.CountBetween(ctx, start, end)
}
