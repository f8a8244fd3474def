package users

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"tenalyadmin/internal/events"
	"tenalyadmin/internal/filter"
)

var (
	ErrReasonRequired = errors.New("suspension reason is required")
	// ErrEmailMismatch means the typed confirmation did not match the account
	// email. The check runs before any network call is made.
	ErrEmailMismatch = errors.New("confirmation email does not match the account")
)

// Service delegates user directory operations to Tenaly, adding the
// guard rails the dashboard needs around the destructive ones.
type Service struct {
	api    DirectoryClient
	events EventSink
	log    *zap.Logger
}

func NewService(api DirectoryClient, events EventSink, log *zap.Logger) *Service {
	return &Service{api: api, events: events, log: log}
}

func (s *Service) List(ctx context.Context, token string, f filter.UserFilters, p filter.PageRequest) (*ListResponse, error) {
	p = p.Clamp()
	accounts, pag, err := s.api.Users(ctx, token, filter.BuildUserQuery(f, p))
	if err != nil {
		return nil, fmt.Errorf("users: list: %w", err)
	}

	total, pages := len(accounts), 1
	if pag != nil {
		total, pages = pag.Total, pag.Pages
	}
	return &ListResponse{
		Users: accounts,
		Page:  filter.InterpretPage(p, total, pages),
	}, nil
}

// Suspend toggles an account. A reason is mandatory when suspending and
// ignored when lifting a suspension.
func (s *Service) Suspend(ctx context.Context, token, userID string, suspend bool, reason string) error {
	if suspend && strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	if !suspend {
		reason = ""
	}

	if err := s.api.SuspendUser(ctx, token, userID, reason); err != nil {
		return fmt.Errorf("users: suspend %s: %w", userID, err)
	}
	if suspend {
		s.log.Info("user suspended", zap.String("user_id", userID), zap.String("reason", reason))
		s.events.Broadcast(events.UserSuspended, userID, reason)
	} else {
		s.log.Info("user suspension lifted", zap.String("user_id", userID))
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, token, userID, email, confirmEmail string) error {
	if !strings.EqualFold(strings.TrimSpace(email), strings.TrimSpace(confirmEmail)) {
		return ErrEmailMismatch
	}

	if err := s.api.DeleteUser(ctx, token, userID, confirmEmail); err != nil {
		return fmt.Errorf("users: delete %s: %w", userID, err)
	}
	s.log.Warn("user deleted", zap.String("user_id", userID), zap.String("email", email))
	s.events.Broadcast(events.UserDeleted, userID, "")
	return nil
}

func (s *Service) ExportCSV(ctx context.Context, token string, f filter.UserFilters) ([]byte, error) {
	q := url.Values{}
	for key, value := range map[string]string{
		"search":       f.Search,
		"subscription": f.Subscription,
		"userType":     f.UserType,
		"status":       f.Status,
	} {
		if value != "" && value != filter.All {
			q.Set(key, value)
		}
	}

	data, err := s.api.ExportUsersCSV(ctx, token, q)
	if err != nil {
		return nil, fmt.Errorf("users: export: %w", err)
	}
	return data, nil
}
