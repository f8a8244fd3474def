package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tenalyadmin/internal/domain"
)

type MockOverviewClient struct {
	mock.Mock
}

func (m *MockOverviewClient) UserStats(ctx context.Context, token string) (*domain.UserStats, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockOverviewClient) ListedAds(ctx context.Context, token, status, userID string) ([]domain.Ad, error) {
	args := m.Called(ctx, token, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ad), args.Error(1)
}

func (m *MockOverviewClient) Verifications(ctx context.Context, token string) ([]domain.UserVerification, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserVerification), args.Error(1)
}

func TestOverview_AggregatesAllSources(t *testing.T) {
	api := new(MockOverviewClient)
	stats := &domain.UserStats{TotalUsers: 120}
	api.On("UserStats", mock.Anything, "tok").Return(stats, nil)
	api.On("ListedAds", mock.Anything, "tok", "", "").Return([]domain.Ad{
		{ID: "a1", Status: domain.AdPending},
		{ID: "a2", Status: domain.AdApproved},
	}, nil)
	api.On("Verifications", mock.Anything, "tok").Return([]domain.UserVerification{
		{
			UserID: "u1",
			Verifications: []domain.VerificationSubmission{
				{VerificationID: "v1", Status: domain.VerificationPending},
			},
		},
	}, nil)

	svc := NewService(api, zap.NewNop())

	overview, err := svc.Overview(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, stats, overview.Users)
	assert.Equal(t, 2, overview.TotalAds)
	assert.Equal(t, 1, overview.AdCounts[domain.AdPending])
	assert.Equal(t, 1, overview.AdCounts[domain.AdApproved])
	assert.Equal(t, 1, overview.VerificationCounts[domain.VerificationPending])
	assert.Equal(t, 1, overview.TotalSubmissions)
	api.AssertExpectations(t)
}

func TestOverview_FirstFailureWins(t *testing.T) {
	api := new(MockOverviewClient)
	api.On("UserStats", mock.Anything, "tok").Return(nil, errors.New("stats down")).Maybe()
	api.On("ListedAds", mock.Anything, "tok", "", "").Return([]domain.Ad{}, nil).Maybe()
	api.On("Verifications", mock.Anything, "tok").Return(nil, errors.New("stats down")).Maybe()

	svc := NewService(api, zap.NewNop())

	_, err := svc.Overview(context.Background(), "tok")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stats down")
}
