package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/proofofcontribution/permit-agent/internal/interfaces"
	"github.com/proofofcontribution/permit-agent/internal/types/business"
)

// SignerHandler exposes the signing account so operators can configure the verifying contract
type SignerHandler struct {
	signer interfaces.PermitSigner
}

func NewSignerHandler(signer interfaces.PermitSigner) *SignerHandler {
	return &SignerHandler{signer: signer}
}

// GetSigner godoc
// @Summary      Signer account
// @Description  Returns the address that signs permits and the EIP-712 domain name and version
// @Tags         permits
// @Produce      json
// @Success      200  {object}  SignerResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /signer [get]
func (h *SignerHandler) GetSigner(c *gin.Context) {
	addr, err := h.signer.Address()
	if err != nil {
		sendError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, SignerResponse{
		Address: addr.Hex(),
		Name:    business.PermitDomainName,
		Version: business.PermitDomainVersion,
	})
}
