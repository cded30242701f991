package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"tech-oh/internal/domain"
)

// DashboardService assembles the signed-in landing view.
type DashboardService struct {
	articles ArticleServiceInterface
	profiles ProfileServiceInterface
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(articles ArticleServiceInterface, profiles ProfileServiceInterface) *DashboardService {
	return &DashboardService{articles: articles, profiles: profiles}
}

// Dashboard fetches the caller's profile and article stats concurrently.
// A caller without a profile gets a nil Profile rather than an error.
func (s *DashboardService) Dashboard(ctx context.Context, identity domain.Identity) (domain.Dashboard, error) {
	d := domain.Dashboard{Identity: identity}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := s.profiles.GetProfile(gctx, identity.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		d.Profile = &profile
		return nil
	})

	g.Go(func() error {
		stats, err := s.articles.ComputeStats(gctx, identity.ID)
		if err != nil {
			return err
		}
		d.Stats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	return d, nil
}
