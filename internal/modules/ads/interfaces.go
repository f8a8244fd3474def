package ads

import (
	"context"
	"net/url"

	"tenalyadmin/internal/domain"
)

// ModerationClient is the slice of the Tenaly client used for ad moderation.
type ModerationClient interface {
	ListedAds(ctx context.Context, token, status, userID string) ([]domain.Ad, error)
	AdDetails(ctx context.Context, token, adID string) (*domain.AdDetails, error)
	ApproveAd(ctx context.Context, token, adID string) error
	RejectAd(ctx context.Context, token, adID, reason string) error
	ExportAdsCSV(ctx context.Context, token string, q url.Values) ([]byte, error)
}

// EventSink pushes moderation outcomes to connected dashboard clients.
type EventSink interface {
	Broadcast(kind, id, reason string)
}
