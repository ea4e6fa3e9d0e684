package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRepo(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionRepository(client, "auth:token:"), mr
}

func TestUserIDByToken(t *testing.T) {
	repo, mr := newSessionRepo(t)
	require.NoError(t, mr.Set("auth:token:abc", "42"))

	id, err := repo.UserIDByToken(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestUserIDByTokenMissing(t *testing.T) {
	repo, _ := newSessionRepo(t)

	_, err := repo.UserIDByToken(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUserIDByTokenMalformed(t *testing.T) {
	repo, mr := newSessionRepo(t)
	require.NoError(t, mr.Set("auth:token:bad", "not-a-number"))
	require.NoError(t, mr.Set("auth:token:zero", "0"))

	_, err := repo.UserIDByToken(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = repo.UserIDByToken(context.Background(), "zero")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUserIDByTokenRedisDown(t *testing.T) {
	repo, mr := newSessionRepo(t)
	mr.Close()

	_, err := repo.UserIDByToken(context.Background(), "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}
