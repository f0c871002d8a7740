package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nox/config"
	otelMocks "nox/infras/otel/mocks"
	cacheMocks "nox/shared/cache/mocks"
	"nox/shared/constant"
	"nox/transport/http/middleware"
)

func limiterConfig(maxRequests, windowSecs int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = windowSecs

	return cfg
}

func TestRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("request under the limit passes with rate headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(5, 60), mockCache)

		mockCache.EXPECT().
			Increment(gomock.Any(), gomock.Any(), 60).
			Return(int64(3), nil)

		rec := httptest.NewRecorder()
		mw.RateLimit(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "5", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRateLimitWindow))
	})

	t.Run("request over the limit is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(5, 60), mockCache)

		mockCache.EXPECT().
			Increment(gomock.Any(), gomock.Any(), 60).
			Return(int64(6), nil)

		rec := httptest.NewRecorder()
		mw.RateLimit(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("cache failure lets the request through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(5, 60), mockCache)

		mockCache.EXPECT().
			Increment(gomock.Any(), gomock.Any(), 60).
			Return(int64(0), errors.New("redis down"))

		rec := httptest.NewRecorder()
		mw.RateLimit(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("disabled limiter never touches the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		cfg := limiterConfig(5, 60)
		cfg.App.RateLimiter.Enable = false
		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache)

		rec := httptest.NewRecorder()
		mw.RateLimit(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/events", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
