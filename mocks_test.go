package forum_test

import (
	"context"

	forum "github.com/ocastellar/go-forum"
	"github.com/stretchr/testify/mock"
)

// MockCredentialStore implements forum.CredentialStore
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) FindByEmail(ctx context.Context, email string) (*forum.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*forum.User)
	return user, args.Error(1)
}

func (m *MockCredentialStore) FindByAccessToken(ctx context.Context, accessToken string) (*forum.User, error) {
	args := m.Called(ctx, accessToken)
	user, _ := args.Get(0).(*forum.User)
	return user, args.Error(1)
}

func (m *MockCredentialStore) FindByID(ctx context.Context, id string) (*forum.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*forum.User)
	return user, args.Error(1)
}

func (m *MockCredentialStore) ClearAccessToken(ctx context.Context, accessToken string) (*forum.User, error) {
	args := m.Called(ctx, accessToken)
	user, _ := args.Get(0).(*forum.User)
	return user, args.Error(1)
}

// MockAuthenticator implements forum.Authenticator
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) SignIn(ctx context.Context, email, password string) (string, *forum.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(1).(*forum.User)
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthenticator) SessionFromToken(token string) (forum.Session, error) {
	args := m.Called(token)
	session, _ := args.Get(0).(forum.Session)
	return session, args.Error(1)
}

func (m *MockAuthenticator) IdentityFromSession(ctx context.Context, session forum.Session) (*forum.User, error) {
	args := m.Called(ctx, session)
	user, _ := args.Get(0).(*forum.User)
	return user, args.Error(1)
}

func (m *MockAuthenticator) RevokeAccessToken(ctx context.Context, accessToken string) (*forum.User, error) {
	args := m.Called(ctx, accessToken)
	user, _ := args.Get(0).(*forum.User)
	return user, args.Error(1)
}

func testConfig(ttl int) *forum.EnvConfig {
	return &forum.EnvConfig{
		SigningKey: "test-signing-secret",
		SessionTTL: ttl,
		CookieName: "t",
	}
}
