package verification

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"tenalyadmin/internal/domain"
	"tenalyadmin/internal/events"
	"tenalyadmin/internal/filter"
)

var ErrReasonRequired = errors.New("rejection reason is required")

// Service implements the identity review queue. Like ads, the whole set is
// pulled once and filtered locally.
type Service struct {
	api    ReviewClient
	events EventSink
	log    *zap.Logger
}

func NewService(api ReviewClient, events EventSink, log *zap.Logger) *Service {
	return &Service{api: api, events: events, log: log}
}

func (s *Service) List(ctx context.Context, token string, c filter.VerificationCriteria) (*ListResponse, error) {
	all, err := s.api.Verifications(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("verification: list: %w", err)
	}

	counts := make(map[domain.VerificationStatus]int, len(domain.VerificationStatuses))
	for _, status := range domain.VerificationStatuses {
		counts[status] = filter.CountByStatus(all, status)
	}

	return &ListResponse{
		Users:            filter.Verifications(all, c),
		Counts:           counts,
		TotalSubmissions: filter.CountSubmissions(all),
	}, nil
}

func (s *Service) Approve(ctx context.Context, token, verificationID string) error {
	if err := s.api.VerifySubmission(ctx, token, verificationID); err != nil {
		return fmt.Errorf("verification: approve %s: %w", verificationID, err)
	}
	s.log.Info("verification approved", zap.String("verification_id", verificationID))
	s.events.Broadcast(events.VerificationApproved, verificationID, "")
	return nil
}

func (s *Service) Reject(ctx context.Context, token, verificationID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	if err := s.api.RejectSubmission(ctx, token, verificationID, reason); err != nil {
		return fmt.Errorf("verification: reject %s: %w", verificationID, err)
	}
	s.log.Info("verification rejected", zap.String("verification_id", verificationID), zap.String("reason", reason))
	s.events.Broadcast(events.VerificationRejected, verificationID, reason)
	return nil
}

func (s *Service) ExportCSV(ctx context.Context, token string, c filter.VerificationCriteria) ([]byte, error) {
	q := url.Values{}
	if status := c.EffectiveStatus(); status != filter.All {
		q.Set("status", status)
	}
	if c.Type != filter.All {
		q.Set("type", c.Type)
	}

	data, err := s.api.ExportVerificationsCSV(ctx, token, q)
	if err != nil {
		return nil, fmt.Errorf("verification: export: %w", err)
	}
	return data, nil
}
