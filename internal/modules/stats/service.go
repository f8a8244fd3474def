package stats

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tenalyadmin/internal/domain"
	"tenalyadmin/internal/filter"
)

// Overview is the dashboard home payload: user totals straight from Tenaly
// plus moderation and review counters computed locally.
type Overview struct {
	Users              *domain.UserStats                 `json:"users"`
	AdCounts           map[domain.AdStatus]int           `json:"adCounts"`
	TotalAds           int                               `json:"totalAds"`
	VerificationCounts map[domain.VerificationStatus]int `json:"verificationCounts"`
	TotalSubmissions   int                               `json:"totalSubmissions"`
}

// Service aggregates the three upstream sources behind the dashboard home.
// The fetches are independent, so they run concurrently and the first
// failure cancels the rest.
type Service struct {
	api OverviewClient
	log *zap.Logger
}

func NewService(api OverviewClient, log *zap.Logger) *Service {
	return &Service{api: api, log: log}
}

func (s *Service) Overview(ctx context.Context, token string) (*Overview, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		userStats     *domain.UserStats
		ads           []domain.Ad
		verifications []domain.UserVerification
	)

	g.Go(func() error {
		var err error
		userStats, err = s.api.UserStats(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		ads, err = s.api.ListedAds(ctx, token, "", "")
		return err
	})
	g.Go(func() error {
		var err error
		verifications, err = s.api.Verifications(ctx, token)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("stats: overview: %w", err)
	}

	flattened := domain.NormalizeAll(ads)
	verificationCounts := make(map[domain.VerificationStatus]int, len(domain.VerificationStatuses))
	for _, status := range domain.VerificationStatuses {
		verificationCounts[status] = filter.CountByStatus(verifications, status)
	}

	return &Overview{
		Users:              userStats,
		AdCounts:           filter.CountsByStatus(flattened),
		TotalAds:           len(flattened),
		VerificationCounts: verificationCounts,
		TotalSubmissions:   filter.CountSubmissions(verifications),
	}, nil
}
