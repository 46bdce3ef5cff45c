package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-tipping-ledger/internal/api/middleware"
	"github.com/feral-file/ff-tipping-ledger/internal/mocks"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		allow      bool
		retryAfter time.Duration
		wantStatus int
		wantHeader string
	}{
		{name: "allowed", allow: true, wantStatus: http.StatusOK},
		{name: "rejected rounds retry up", retryAfter: 1500 * time.Millisecond, wantStatus: http.StatusTooManyRequests, wantHeader: "2"},
		{name: "rejected sub-second", retryAfter: 100 * time.Millisecond, wantStatus: http.StatusTooManyRequests, wantHeader: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			limiter := mocks.NewMockRateLimiter(ctrl)
			limiter.EXPECT().Allow("192.0.2.1").Return(tt.allow, tt.retryAfter)

			router := gin.New()
			router.Use(middleware.RateLimit(limiter))
			router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.RemoteAddr = "192.0.2.1:4321"
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantHeader, w.Header().Get("Retry-After"))
			if tt.wantStatus == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"error":{"code":"rate_limited","message":"Too many requests"}}`, w.Body.String())
			}
		})
	}
}
