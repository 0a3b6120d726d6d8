package statsservice

import (
	"context"
	"math"

	"github.com/GlebRadaev/coderr/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repo interface {
	CountReviews(ctx context.Context) (int, error)
	AverageRating(ctx context.Context) (float64, error)
	CountProfiles(ctx context.Context, role domain.Role) (int, error)
	CountOffers(ctx context.Context) (int, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

// GetSiteStats computes the platform counters. Nothing is cached.
func (s *Service) GetSiteStats(ctx context.Context) (*domain.SiteStats, error) {
	var stats domain.SiteStats
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.ReviewCount, err = s.repo.CountReviews(ctx)
		return err
	})
	g.Go(func() error {
		avg, err := s.repo.AverageRating(ctx)
		if err != nil {
			return err
		}
		stats.AverageRating = math.Round(avg*10) / 10
		return nil
	})
	g.Go(func() (err error) {
		stats.BusinessProfileCount, err = s.repo.CountProfiles(ctx, domain.RoleBusiness)
		return err
	})
	g.Go(func() (err error) {
		stats.OfferCount, err = s.repo.CountOffers(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("can't compute site stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
