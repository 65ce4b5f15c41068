package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/proofofcontribution/permit-agent/internal/apperrors"
	"github.com/proofofcontribution/permit-agent/internal/interfaces"
	"github.com/proofofcontribution/permit-agent/internal/middleware"
	"github.com/proofofcontribution/permit-agent/internal/types/api/requests"
	"github.com/proofofcontribution/permit-agent/internal/types/business"
)

// maxVerifyBodyBytes bounds request bodies; caller-supplied diffs can be large
const maxVerifyBodyBytes = 5 << 20

// VerifyHandler issues contribution permits
type VerifyHandler struct {
	verifier interfaces.CommitVerifier
}

// NewVerifyHandler creates a handler with interface dependencies
func NewVerifyHandler(verifier interfaces.CommitVerifier) *VerifyHandler {
	return &VerifyHandler{verifier: verifier}
}

// Use types from the centralized packages
type (
	VerifyCommitRequest = requests.VerifyCommitRequest
	SignedPermit        = business.SignedPermit
)

// VerifyCommit godoc
// @Summary      Issue a contribution permit
// @Description  Fetches the commit, scores it and returns an EIP-712 signed permit
// @Tags         permits
// @Accept       json
// @Produce      json
// @Param        request  body      VerifyCommitRequest  true  "Commit and permit parameters"
// @Success      200      {object}  SignedPermit
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /verify_commit [post]
func (h *VerifyHandler) VerifyCommit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxVerifyBodyBytes)

	var req VerifyCommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, apperrors.Wrap(err, apperrors.CodeValidation, middleware.FormatValidationError(err)))
		return
	}

	signed, err := h.verifier.VerifyCommit(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	middleware.LogWithCorrelationID(c.Request.Context()).Debug("Permit issued",
		zap.String("repo", req.Repo),
		zap.String("sha", req.SHA),
		zap.Int64("reputation", signed.Reputation))

	sendSuccess(c, http.StatusOK, signed)
}
