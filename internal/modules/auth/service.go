package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tenalyadmin/internal/session"
	"tenalyadmin/internal/tenaly"
)

// Service exchanges staff credentials for a Tenaly bearer token and keeps
// it in the local session store. The token itself never leaves the gateway.
type Service struct {
	api   LoginClient
	store SessionStore
	log   *zap.Logger
}

func NewService(api LoginClient, store SessionStore, log *zap.Logger) *Service {
	return &Service{api: api, store: store, log: log}
}

func (s *Service) Login(ctx context.Context, login, password string) (*session.Session, error) {
	res, err := s.api.Login(ctx, login, password)
	if err != nil {
		if apiErr, ok := tenaly.AsAPIError(err); ok && apiErr.Status < 500 {
			s.log.Info("login rejected", zap.String("login", login), zap.Int("status", apiErr.Status))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth: login: %w", err)
	}

	sess, err := s.store.Save(res.Token, res.Email, res.FullName, res.Role)
	if err != nil {
		return nil, fmt.Errorf("auth: persist session: %w", err)
	}
	s.log.Info("admin signed in", zap.String("email", sess.Email))
	return sess, nil
}

// Current returns the active session, or session.ErrNoSession / ErrExpired.
func (s *Service) Current() (*session.Session, error) {
	return s.store.Current()
}

func (s *Service) Logout() error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("auth: clear session: %w", err)
	}
	s.log.Info("admin signed out")
	return nil
}
