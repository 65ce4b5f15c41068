package business

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/proofofcontribution/permit-agent/internal/apperrors"
)

const (
	// MinReputation is the lowest score a permit can carry
	MinReputation = 1
	// MaxReputation is the highest score a permit can carry
	MaxReputation = 100

	// PermitDomainName is the EIP-712 domain name the verifying contract expects
	PermitDomainName = "ProofOfContribution"
	// PermitDomainVersion is the EIP-712 domain version
	PermitDomainVersion = "1"

	// DefaultTokenURI is used when the caller does not supply one
	DefaultTokenURI = "ipfs://pending"
)

// CommitRecord is the resolved identity and content of a single commit.
// Created per request, never persisted.
type CommitRecord struct {
	Message     string `json:"message"`
	Diff        string `json:"diff"`
	ContentHash string `json:"contentHash"`
	AuthorEmail string `json:"authorEmail"`
}

// PermitPayload is the Permit struct as signed
type PermitPayload struct {
	To         string `json:"to"`
	CommitHash string `json:"commitHash"`
	Reputation int64  `json:"reputation"`
	Expiry     int64  `json:"expiry"`
	TokenURI   string `json:"tokenURI"`
}

// Validate checks that every field is present and well-formed
func (p PermitPayload) Validate() error {
	if !common.IsHexAddress(p.To) {
		return apperrors.Validationf("invalid recipient address: %q", p.To)
	}
	if !IsBytes32Hex(p.CommitHash) {
		return apperrors.Validationf("commitHash must be a 0x-prefixed 32-byte hex string")
	}
	if p.Reputation < MinReputation || p.Reputation > MaxReputation {
		return apperrors.Validationf("reputation %d outside [%d, %d]", p.Reputation, MinReputation, MaxReputation)
	}
	if p.Expiry <= 0 {
		return apperrors.Validationf("expiry must be a positive unix timestamp")
	}
	if strings.TrimSpace(p.TokenURI) == "" {
		return apperrors.Validationf("tokenURI is required")
	}
	return nil
}

// SignedPermit is the payload plus its EIP-712 signature
type SignedPermit struct {
	PermitPayload
	Signature string `json:"signature"`
}

// EIP712Domain identifies the verifying contract a permit is bound to
type EIP712Domain struct {
	Name              string `json:"name"`
	Version           string `json:"version"`
	ChainID           int64  `json:"chainId"`
	VerifyingContract string `json:"verifyingContract"`
}

// NewPermitDomain builds the per-request domain for a chain and contract
func NewPermitDomain(chainID int64, verifyingContract string) EIP712Domain {
	return EIP712Domain{
		Name:              PermitDomainName,
		Version:           PermitDomainVersion,
		ChainID:           chainID,
		VerifyingContract: verifyingContract,
	}
}

// Validate checks the caller-supplied parts of the domain
func (d EIP712Domain) Validate() error {
	if d.ChainID <= 0 {
		return apperrors.Validationf("chain_id must be positive")
	}
	if !common.IsHexAddress(d.VerifyingContract) {
		return apperrors.Validationf("invalid verifying contract address: %q", d.VerifyingContract)
	}
	return nil
}

// ClampReputation forces a score into [MinReputation, MaxReputation]
func ClampReputation(score int64) int64 {
	if score < MinReputation {
		return MinReputation
	}
	if score > MaxReputation {
		return MaxReputation
	}
	return score
}

// IsBytes32Hex reports whether s is 0x followed by exactly 64 hex chars
func IsBytes32Hex(s string) bool {
	if len(s) != 66 {
		return false
	}
	b, err := hexutil.Decode(s)
	return err == nil && len(b) == 32
}
