package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name                 string
		requestCorrelationID string
		expectNewID          bool
	}{
		{
			name:        "New ID generated when header not present",
			expectNewID: true,
		},
		{
			name:                 "Existing ID preserved when header present",
			requestCorrelationID: "test-correlation-id-123",
		},
		{
			name:                 "Malformed ID replaced",
			requestCorrelationID: "bad id\nwith newline",
			expectNewID:          true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CorrelationIDMiddleware())

			var fromCtx string
			router.GET("/test", func(c *gin.Context) {
				fromCtx = CorrelationIDFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestCorrelationID != "" {
				req.Header.Set(CorrelationIDHeader, tt.requestCorrelationID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			header := w.Header().Get(CorrelationIDHeader)
			assert.Equal(t, header, fromCtx)

			if tt.expectNewID {
				_, err := uuid.Parse(header)
				assert.NoError(t, err)
				assert.NotEqual(t, tt.requestCorrelationID, header)
			} else {
				assert.Equal(t, tt.requestCorrelationID, header)
			}
		})
	}
}

func TestCorrelationIDFromContext(t *testing.T) {
	assert.Empty(t, CorrelationIDFromContext(context.Background()))

	ctx := WithCorrelationID(context.Background(), "abc")
	assert.Equal(t, "abc", CorrelationIDFromContext(ctx))
	assert.NotNil(t, LogWithCorrelationID(ctx))
	assert.NotNil(t, LogWithCorrelationID(context.Background()))
}
