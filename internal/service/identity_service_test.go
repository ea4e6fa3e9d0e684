package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noticeboard/internal/model"
	"noticeboard/internal/repository"
	"noticeboard/pkg/logger"
)

type fakeSessions struct {
	byToken map[string]int64
	err     error
}

func (f *fakeSessions) UserIDByToken(_ context.Context, token string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if id, ok := f.byToken[token]; ok {
		return id, nil
	}
	return 0, repository.ErrSessionNotFound
}

type fakeUsers struct {
	callers   map[int64]*model.Caller
	apiTokens map[string]int64
	err       error
}

func (f *fakeUsers) GetCallerByUserID(_ context.Context, userID int64) (*model.Caller, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.callers[userID]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUsers) GetUserIDByToken(_ context.Context, token string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if id, ok := f.apiTokens[token]; ok {
		return id, nil
	}
	return 0, repository.ErrUserNotFound
}

func newIdentityFixture() (*fakeSessions, *fakeUsers, *IdentityService) {
	sessions := &fakeSessions{byToken: map[string]int64{"session-token": 9}}
	users := &fakeUsers{
		callers: map[int64]*model.Caller{
			9:  {UserID: 9, AccountID: 100, TopAccountID: 1, RoleID: 3, Status: model.UserStatusActive},
			10: {UserID: 10, AccountID: 100, TopAccountID: 1, RoleID: 3, Status: 0},
		},
		apiTokens: map[string]int64{"api-token": 9, "disabled-token": 10, "orphan-token": 77},
	}
	return sessions, users, NewIdentityService(sessions, users, logger.NewNop())
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "abc", NormalizeToken("abc"))
	assert.Equal(t, "abc", NormalizeToken("  abc "))
	assert.Equal(t, "abc", NormalizeToken("Bearer abc"))
	assert.Equal(t, "abc", NormalizeToken("bearer   abc"))
	assert.Equal(t, "", NormalizeToken("Bearer "))
	assert.Equal(t, "", NormalizeToken(""))
}

func TestResolveByTokenFromSession(t *testing.T) {
	_, _, svc := newIdentityFixture()

	caller, err := svc.ResolveByToken(context.Background(), "Bearer session-token")
	require.NoError(t, err)
	assert.Equal(t, int64(9), caller.UserID)
	assert.Equal(t, int64(100), caller.AccountID)
	assert.Equal(t, int64(1), caller.TopAccountID)
	assert.Equal(t, int64(3), caller.RoleID)
}

func TestResolveByTokenFallsBackToAPIToken(t *testing.T) {
	_, _, svc := newIdentityFixture()

	caller, err := svc.ResolveByToken(context.Background(), "api-token")
	require.NoError(t, err)
	assert.Equal(t, int64(9), caller.UserID)
}

func TestResolveByTokenUnauthenticated(t *testing.T) {
	_, _, svc := newIdentityFixture()

	for _, token := range []string{"", "  ", "Bearer", "unknown", "disabled-token", "orphan-token"} {
		_, err := svc.ResolveByToken(context.Background(), token)
		assert.ErrorIs(t, err, ErrUnauthenticated, "token=%q", token)
	}
}

func TestResolveByTokenSessionStoreDown(t *testing.T) {
	sessions, _, svc := newIdentityFixture()
	redisErr := errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
	sessions.err = redisErr

	_, err := svc.ResolveByToken(context.Background(), "session-token")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, redisErr)
}

func TestResolveByTokenDatabaseDown(t *testing.T) {
	_, users, svc := newIdentityFixture()
	dbErr := errors.New("invalid connection")
	users.err = dbErr

	_, err := svc.ResolveByToken(context.Background(), "session-token")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.ResolveByToken(context.Background(), "api-token")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
}
