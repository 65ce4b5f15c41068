package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/proofofcontribution/permit-agent/internal/apperrors"
	"github.com/proofofcontribution/permit-agent/internal/middleware"
	"github.com/proofofcontribution/permit-agent/internal/types/api/responses"
)

// Use types from the centralized packages
type (
	ErrorResponse  = responses.ErrorResponse
	HealthResponse = responses.HealthResponse
	SignerResponse = responses.SignerResponse
)

// sendError maps a tagged error to its HTTP status and writes the uniform
// {"detail": ...} body. This is the only place error codes become statuses.
func sendError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	log := middleware.LogWithCorrelationID(c.Request.Context())

	fields := []zap.Field{
		zap.Error(err),
		zap.String("code", apperrors.CodeOf(err).String()),
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if e, ok := apperrors.As(err); ok && e.Op() != "" {
		fields = append(fields, zap.String("op", e.Op()))
	}

	if serverSide(err) {
		log.Error("Request failed", fields...)
	} else {
		log.Warn("Request failed", fields...)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{Detail: apperrors.Detail(err)})
}

// serverSide reports failures the caller cannot fix by changing the request.
// They still answer 400 but log at error level.
func serverSide(err error) bool {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeUpstream, apperrors.CodeConfiguration, apperrors.CodeUnknown:
		return true
	default:
		return false
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
