package ads

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"tenalyadmin/internal/domain"
	"tenalyadmin/internal/events"
	"tenalyadmin/internal/filter"
	"tenalyadmin/internal/schema"
)

var ErrReasonRequired = errors.New("rejection reason is required")

// Service implements the moderation queue. Listing always pulls the whole
// set from Tenaly and filters locally, so counts and filters never disagree
// with each other the way independent server queries can.
type Service struct {
	api    ModerationClient
	events EventSink
	log    *zap.Logger
	now    func() time.Time
}

func NewService(api ModerationClient, events EventSink, log *zap.Logger) *Service {
	return &Service{api: api, events: events, log: log, now: time.Now}
}

func (s *Service) List(ctx context.Context, token string, c filter.AdCriteria) (*ListResponse, error) {
	raw, err := s.api.ListedAds(ctx, token, "", "")
	if err != nil {
		return nil, fmt.Errorf("ads: list: %w", err)
	}

	all := domain.NormalizeAll(raw)
	return &ListResponse{
		Ads:    filter.Ads(all, c, s.now()),
		Counts: filter.CountsByStatus(all),
		Total:  len(all),
	}, nil
}

// ListForUser returns every ad a single seller has posted, for the drill-in
// view on the user profile page.
func (s *Service) ListForUser(ctx context.Context, token, userID string) ([]domain.FlattenedAd, error) {
	raw, err := s.api.ListedAds(ctx, token, "", userID)
	if err != nil {
		return nil, fmt.Errorf("ads: list for user %s: %w", userID, err)
	}
	return domain.NormalizeAll(raw), nil
}

func (s *Service) Detail(ctx context.Context, token, adID string) (*DetailResponse, error) {
	ad, err := s.api.AdDetails(ctx, token, adID)
	if err != nil {
		return nil, fmt.Errorf("ads: detail %s: %w", adID, err)
	}
	return &DetailResponse{Ad: ad, Rows: schema.Project(ad)}, nil
}

func (s *Service) Approve(ctx context.Context, token, adID string) error {
	if err := s.api.ApproveAd(ctx, token, adID); err != nil {
		return fmt.Errorf("ads: approve %s: %w", adID, err)
	}
	s.log.Info("ad approved", zap.String("ad_id", adID))
	s.events.Broadcast(events.AdApproved, adID, "")
	return nil
}

func (s *Service) Reject(ctx context.Context, token, adID, reason string) error {
	if reason == "" {
		return ErrReasonRequired
	}
	if err := s.api.RejectAd(ctx, token, adID, reason); err != nil {
		return fmt.Errorf("ads: reject %s: %w", adID, err)
	}
	s.log.Info("ad rejected", zap.String("ad_id", adID), zap.String("reason", reason))
	s.events.Broadcast(events.AdRejected, adID, reason)
	return nil
}

// ExportCSV asks Tenaly for the export first; when the upstream endpoint is
// unavailable it falls back to encoding the current filtered table locally,
// so the download button keeps working during partial outages.
func (s *Service) ExportCSV(ctx context.Context, token string, c filter.AdCriteria) ([]byte, error) {
	q := url.Values{}
	if c.Status != filter.All {
		q.Set("status", c.Status)
	}

	data, err := s.api.ExportAdsCSV(ctx, token, q)
	if err == nil {
		return data, nil
	}
	s.log.Warn("upstream csv export failed, building locally", zap.Error(err))

	list, lerr := s.List(ctx, token, c)
	if lerr != nil {
		return nil, lerr
	}
	return encodeAdsCSV(list.Ads)
}

func encodeAdsCSV(ads []domain.FlattenedAd) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Business", "Category", "Date Created", "Date Approved", "Status"}); err != nil {
		return nil, fmt.Errorf("ads: write csv header: %w", err)
	}
	for _, ad := range ads {
		approved := ""
		if ad.ApprovedAt != nil {
			approved = ad.ApprovedAt.Format("2006-01-02")
		}
		rec := []string{
			ad.UserName,
			ad.Category,
			ad.CreatedAt.Format("2006-01-02"),
			approved,
			string(ad.Status),
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("ads: write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("ads: flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
