package stats

import (
	"context"

	"tenalyadmin/internal/domain"
)

// OverviewClient is the slice of the Tenaly client the dashboard home needs.
type OverviewClient interface {
	UserStats(ctx context.Context, token string) (*domain.UserStats, error)
	ListedAds(ctx context.Context, token, status, userID string) ([]domain.Ad, error)
	Verifications(ctx context.Context, token string) ([]domain.UserVerification, error)
}
