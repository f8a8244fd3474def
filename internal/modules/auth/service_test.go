package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tenalyadmin/internal/session"
	"tenalyadmin/internal/tenaly"
)

/* -------- mocks -------- */

type MockLoginClient struct {
	mock.Mock
}

func (m *MockLoginClient) Login(ctx context.Context, login, password string) (*tenaly.LoginResult, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenaly.LoginResult), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(token, email, fullName, role string) (*session.Session, error) {
	args := m.Called(token, email, fullName, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionStore) Current() (*session.Session, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionStore) Clear() error {
	return m.Called().Error(0)
}

/* -------- tests -------- */

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()

	api := new(MockLoginClient)
	api.On("Login", ctx, "ada@tenaly.com", "secret").Return(&tenaly.LoginResult{
		Token:    "tok-1",
		FullName: "Ada Obi",
		Email:    "ada@tenaly.com",
		Role:     "admin",
	}, nil)

	store := new(MockSessionStore)
	store.On("Save", "tok-1", "ada@tenaly.com", "Ada Obi", "admin").
		Return(&session.Session{Token: "tok-1", Email: "ada@tenaly.com", FullName: "Ada Obi", Role: "admin"}, nil)

	svc := NewService(api, store, zap.NewNop())

	sess, err := svc.Login(ctx, "ada@tenaly.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", sess.FullName)
	api.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestLogin_UpstreamRejectionBecomesInvalidCredentials(t *testing.T) {
	ctx := context.Background()

	api := new(MockLoginClient)
	api.On("Login", ctx, "ada@tenaly.com", "wrong").
		Return(nil, &tenaly.APIError{Status: 401, Message: "bad credentials"})

	store := new(MockSessionStore)
	svc := NewService(api, store, zap.NewNop())

	_, err := svc.Login(ctx, "ada@tenaly.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_TransportFailurePassesThrough(t *testing.T) {
	ctx := context.Background()

	api := new(MockLoginClient)
	api.On("Login", ctx, "ada@tenaly.com", "secret").Return(nil, errors.New("dial tcp: timeout"))

	svc := NewService(api, new(MockSessionStore), zap.NewNop())

	_, err := svc.Login(ctx, "ada@tenaly.com", "secret")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_ClearsStore(t *testing.T) {
	store := new(MockSessionStore)
	store.On("Clear").Return(nil)

	svc := NewService(new(MockLoginClient), store, zap.NewNop())

	require.NoError(t, svc.Logout())
	store.AssertExpectations(t)
}
