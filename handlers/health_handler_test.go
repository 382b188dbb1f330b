package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mailguard-live/mailguard-backend/types"
)

func setupHealthRouter(messageStore *MockMessageStore) *gin.Engine {
	r := gin.New()
	h := NewHealthHandler(messageStore)
	r.GET("/health", h.ReadinessCheck)
	r.GET("/health/liveness", h.LivenessCheck)
	return r
}

func TestLivenessCheck(t *testing.T) {
	r := setupHealthRouter(new(MockMessageStore))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/liveness", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadinessCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantCode   int
		wantStatus string
	}{
		{"store reachable", nil, http.StatusOK, types.HealthStatusUp},
		{"store down", errors.New("dial timeout"), http.StatusServiceUnavailable, types.HealthStatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messageStore := new(MockMessageStore)
			messageStore.On("Ping", mock.Anything).Return(tt.pingErr)
			r := setupHealthRouter(messageStore)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			var resp types.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
		})
	}
}
