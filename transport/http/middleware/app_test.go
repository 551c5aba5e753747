package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"shareit/config"
	"shareit/infras/otel/mocks"
	"shareit/shared/constant"
	cacheMocks "shareit/shared/cache/mocks"
	"shareit/transport/http/middleware"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestAppMiddleware_RateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		header        map[string]string
		setupMock     func(c *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:      "disabled",
			setupMock: func(_ *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusOK,
		},
		{
			name:   "counted per sharer",
			enable: true,
			header: map[string]string{constant.RequestHeaderSharerUserID: "7"},
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), "limiter:sharer:7", 60).Return(int64(1), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "1",
		},
		{
			name:   "anonymous callers keyed by forwarded address",
			enable: true,
			header: map[string]string{constant.RequestHeaderForwardedFor: "10.0.0.1, 10.0.0.2"},
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), "limiter:ip:10.0.0.1", 60).Return(int64(2), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "0",
		},
		{
			name:   "over the limit",
			enable: true,
			header: map[string]string{constant.RequestHeaderSharerUserID: "7"},
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(3), nil)
			},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:   "cache failure lets the request through",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis down"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(mockCache)

			app := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(tt.enable), mockCache)

			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			app.RateLimit()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestAppMiddleware_RequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "abc")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("generates missing id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestAppMiddleware_Tracing(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantError bool
	}{
		{name: "success is not an error", status: http.StatusOK},
		{name: "client error is not an error", status: http.StatusNotFound},
		{name: "server error is traced", status: http.StatusInternalServerError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := mocks.NewRecorder()
			app := middleware.NewAppMiddleware(recorder, &config.Config{}, nil)

			handler := app.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items", nil).WithContext(context.Background()))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, []string{"GET /items"}, recorder.Spans())
			assert.Equal(t, tt.wantError, len(recorder.Errors()) == 1)
		})
	}
}
