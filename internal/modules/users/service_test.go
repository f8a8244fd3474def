package users

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tenalyadmin/internal/domain"
	"tenalyadmin/internal/filter"
	"tenalyadmin/internal/tenaly"
)

/* -------- mocks -------- */

type MockDirectoryClient struct {
	mock.Mock
}

func (m *MockDirectoryClient) Users(ctx context.Context, token string, q url.Values) ([]domain.UserAccount, *tenaly.Pagination, error) {
	args := m.Called(ctx, token, q)
	var accounts []domain.UserAccount
	if args.Get(0) != nil {
		accounts = args.Get(0).([]domain.UserAccount)
	}
	var page *tenaly.Pagination
	if args.Get(1) != nil {
		page = args.Get(1).(*tenaly.Pagination)
	}
	return accounts, page, args.Error(2)
}

func (m *MockDirectoryClient) SuspendUser(ctx context.Context, token, userID, reason string) error {
	return m.Called(ctx, token, userID, reason).Error(0)
}

func (m *MockDirectoryClient) DeleteUser(ctx context.Context, token, userID, confirmEmail string) error {
	return m.Called(ctx, token, userID, confirmEmail).Error(0)
}

func (m *MockDirectoryClient) ExportUsersCSV(ctx context.Context, token string, q url.Values) ([]byte, error) {
	args := m.Called(ctx, token, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) Broadcast(kind, id, reason string) {
	m.Called(kind, id, reason)
}

/* -------- tests -------- */

func TestList_DelegatesFiltersUpstream(t *testing.T) {
	ctx := context.Background()
	api := new(MockDirectoryClient)
	api.On("Users", ctx, "tok", mock.MatchedBy(func(q url.Values) bool {
		return q.Get("page") == "1" && q.Get("limit") == "10" &&
			q.Get("userType") == "seller" && !q.Has("subscription")
	})).Return([]domain.UserAccount{{ID: "u1"}}, &tenaly.Pagination{Total: 31, Pages: 4}, nil)

	svc := NewService(api, new(MockEventSink), zap.NewNop())
	f := filter.UserFilters{UserType: "seller", Subscription: filter.All}

	list, err := svc.List(ctx, "tok", f, filter.PageRequest{})

	require.NoError(t, err)
	require.Len(t, list.Users, 1)
	assert.Equal(t, 31, list.Page.Total)
	assert.Equal(t, 4, list.Page.Pages)
	api.AssertExpectations(t)
}

func TestSuspend_RequiresReasonWhenSuspending(t *testing.T) {
	api := new(MockDirectoryClient)
	sink := new(MockEventSink)
	svc := NewService(api, sink, zap.NewNop())

	err := svc.Suspend(context.Background(), "tok", "u1", true, "  ")

	assert.ErrorIs(t, err, ErrReasonRequired)
	api.AssertNotCalled(t, "SuspendUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSuspend_BroadcastsWithReason(t *testing.T) {
	ctx := context.Background()
	api := new(MockDirectoryClient)
	api.On("SuspendUser", ctx, "tok", "u1", "spam listings").Return(nil)
	sink := new(MockEventSink)
	sink.On("Broadcast", "user_suspended", "u1", "spam listings").Return()

	svc := NewService(api, sink, zap.NewNop())

	require.NoError(t, svc.Suspend(ctx, "tok", "u1", true, "spam listings"))
	sink.AssertExpectations(t)
}

func TestUnsuspend_NeedsNoReasonAndNoEvent(t *testing.T) {
	ctx := context.Background()
	api := new(MockDirectoryClient)
	api.On("SuspendUser", ctx, "tok", "u1", "").Return(nil)
	sink := new(MockEventSink)

	svc := NewService(api, sink, zap.NewNop())

	require.NoError(t, svc.Suspend(ctx, "tok", "u1", false, ""))
	sink.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_EmailMismatchBlocksBeforeNetwork(t *testing.T) {
	api := new(MockDirectoryClient)
	svc := NewService(api, new(MockEventSink), zap.NewNop())

	err := svc.Delete(context.Background(), "tok", "u1", "ada@tenaly.com", "adao@tenaly.com")

	assert.ErrorIs(t, err, ErrEmailMismatch)
	api.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete_CaseInsensitiveConfirmation(t *testing.T) {
	ctx := context.Background()
	api := new(MockDirectoryClient)
	api.On("DeleteUser", ctx, "tok", "u1", "ADA@Tenaly.com").Return(nil)
	sink := new(MockEventSink)
	sink.On("Broadcast", "user_deleted", "u1", "").Return()

	svc := NewService(api, sink, zap.NewNop())

	require.NoError(t, svc.Delete(ctx, "tok", "u1", "ada@tenaly.com", "ADA@Tenaly.com"))
	api.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestExportCSV_DropsAllSentinels(t *testing.T) {
	ctx := context.Background()
	api := new(MockDirectoryClient)
	api.On("ExportUsersCSV", ctx, "tok", mock.MatchedBy(func(q url.Values) bool {
		return q.Get("status") == "suspended" && !q.Has("userType") && !q.Has("subscription")
	})).Return([]byte("csv"), nil)

	svc := NewService(api, new(MockEventSink), zap.NewNop())
	f := filter.UserFilters{Status: "suspended", UserType: filter.All}

	data, err := svc.ExportCSV(ctx, "tok", f)

	require.NoError(t, err)
	assert.Equal(t, "csv", string(data))
}
