package services

import (
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"go.uber.org/zap"

	"github.com/proofofcontribution/permit-agent/internal/apperrors"
	"github.com/proofofcontribution/permit-agent/internal/logger"
	"github.com/proofofcontribution/permit-agent/internal/types/business"
)

const permitPrimaryType = "Permit"

// permitTypes must match the verifying contract's PERMIT_TYPEHASH field for field
var permitTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	permitPrimaryType: {
		{Name: "to", Type: "address"},
		{Name: "commitHash", Type: "bytes32"},
		{Name: "reputation", Type: "uint256"},
		{Name: "expiry", Type: "uint256"},
		{Name: "tokenURI", Type: "string"},
	},
}

// PermitSigner signs permits with a key held in memory for the process lifetime
type PermitSigner struct {
	key    *ecdsa.PrivateKey
	keyErr error
	logger *zap.Logger
}

// NewPermitSigner parses the hex key once. A missing or bad key is not an
// error here; it surfaces as a configuration error on the first Sign.
func NewPermitSigner(privateKeyHex string) *PermitSigner {
	s := &PermitSigner{logger: logger.Log}

	trimmed := strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x")
	if trimmed == "" {
		s.keyErr = apperrors.Configurationf("signing key not configured")
		return s
	}

	key, err := crypto.HexToECDSA(trimmed)
	if err != nil {
		// never include the key material in the error
		s.keyErr = apperrors.Configurationf("signing key is not a valid secp256k1 private key")
		return s
	}
	s.key = key
	return s
}

// Address returns the signer account derived from the key
func (s *PermitSigner) Address() (common.Address, error) {
	if s.keyErr != nil {
		return common.Address{}, s.keyErr
	}
	return crypto.PubkeyToAddress(s.key.PublicKey), nil
}

// Sign validates the payload and domain, hashes the typed data and returns the
// payload with a 65-byte r||s||v signature, v in {27, 28}. Signing is
// deterministic (RFC 6979).
func (s *PermitSigner) Sign(payload business.PermitPayload, chainID int64, verifyingContract string) (*business.SignedPermit, error) {
	if s.keyErr != nil {
		return nil, apperrors.WithOp(s.keyErr, "sign")
	}

	digest, err := PermitDigest(payload, business.NewPermitDomain(chainID, verifyingContract))
	if err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(digest, s.key)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeUnknown, "failed to sign permit")
	}
	sig[crypto.RecoveryIDOffset] += 27

	s.logger.Info("Signed permit",
		zap.String("to", payload.To),
		zap.String("commit_hash", payload.CommitHash),
		zap.Int64("reputation", payload.Reputation),
		zap.Int64("chain_id", chainID))

	return &business.SignedPermit{
		PermitPayload: payload,
		Signature:     hexutil.Encode(sig),
	}, nil
}

// PermitDigest returns keccak256(0x1901 || domainSeparator || hashStruct(permit))
func PermitDigest(payload business.PermitPayload, domain business.EIP712Domain) ([]byte, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	if err := domain.Validate(); err != nil {
		return nil, err
	}

	digest, _, err := apitypes.TypedDataAndHash(NewPermitTypedData(payload, domain))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeValidation, "failed to hash permit typed data")
	}
	return digest, nil
}

// NewPermitTypedData assembles the EIP-712 structure with values taken verbatim from the payload
func NewPermitTypedData(payload business.PermitPayload, domain business.EIP712Domain) apitypes.TypedData {
	return apitypes.TypedData{
		Types:       permitTypes,
		PrimaryType: permitPrimaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              domain.Name,
			Version:           domain.Version,
			ChainId:           math.NewHexOrDecimal256(domain.ChainID),
			VerifyingContract: domain.VerifyingContract,
		},
		Message: apitypes.TypedDataMessage{
			"to":         payload.To,
			"commitHash": payload.CommitHash,
			"reputation": big.NewInt(payload.Reputation),
			"expiry":     big.NewInt(payload.Expiry),
			"tokenURI":   payload.TokenURI,
		},
	}
}
