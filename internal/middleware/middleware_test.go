package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noticeboard/internal/i18n"
	"noticeboard/internal/model"
	"noticeboard/internal/service"
	"noticeboard/pkg/logger"
)

type fakeIdentity struct {
	caller   *model.Caller
	err      error
	gotToken string
}

func (f *fakeIdentity) ResolveByToken(_ context.Context, token string) (*model.Caller, error) {
	f.gotToken = token
	return f.caller, f.err
}

func newBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	b, err := i18n.New("en")
	require.NoError(t, err)
	return b
}

func authRouter(t *testing.T, identity IdentityProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	bundle := newBundle(t)

	r := gin.New()
	r.Use(Locale(bundle), UserAuth(identity, bundle))
	r.GET("/me", func(c *gin.Context) {
		caller, ok := CallerFromContext(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, caller)
	})
	return r
}

func TestUserAuthStoresCaller(t *testing.T) {
	identity := &fakeIdentity{caller: &model.Caller{UserID: 9, AccountID: 100, TopAccountID: 1, RoleID: 3}}
	r := authRouter(t, identity)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer abc", identity.gotToken)

	var got model.Caller
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(100), got.AccountID)
}

func TestUserAuthRejectsUnauthenticated(t *testing.T) {
	r := authRouter(t, &fakeIdentity{err: service.ErrUnauthenticated})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Accept-Language", "ko")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"data":[],"message":"로그인이 필요합니다"}`, rec.Body.String())
}

func TestUserAuthStoreFailure(t *testing.T) {
	r := authRouter(t, &fakeIdentity{err: fmt.Errorf("%w: %w", service.ErrStoreUnavailable, errors.New("redis down"))})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestCallerFromContextMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CallerFromContext(c)
	assert.False(t, ok)

	c.Set("caller", "not a caller")
	_, ok = CallerFromContext(c)
	assert.False(t, ok)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(logger.NewNop(), newBundle(t)))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"data":[],"message":"Internal server error"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/x", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggerMiddlewarePassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(logger.NewNop()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x?a=1", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
