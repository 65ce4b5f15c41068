package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/proofofcontribution/permit-agent/internal/interfaces"
	"github.com/proofofcontribution/permit-agent/internal/logger"
	"github.com/proofofcontribution/permit-agent/internal/types/api/requests"
	"github.com/proofofcontribution/permit-agent/internal/types/business"
)

// VerificationService runs resolve, score and sign for one request
type VerificationService struct {
	resolver interfaces.CommitResolver
	scorer   interfaces.ReputationScorer
	signer   interfaces.PermitSigner
	logger   *zap.Logger
}

// NewVerificationService creates the permit pipeline
func NewVerificationService(resolver interfaces.CommitResolver, scorer interfaces.ReputationScorer, signer interfaces.PermitSigner) *VerificationService {
	return &VerificationService{
		resolver: resolver,
		scorer:   scorer,
		signer:   signer,
		logger:   logger.Log,
	}
}

// VerifyCommit issues a signed permit for a commit. Caller-supplied message and
// diff replace the fetched ones for scoring only; commitHash always comes from
// the resolver. No partial permit is returned on error.
func (s *VerificationService) VerifyCommit(ctx context.Context, req requests.VerifyCommitRequest) (*business.SignedPermit, error) {
	record, err := s.resolver.Resolve(ctx, req.Repo, req.SHA)
	if err != nil {
		return nil, err
	}

	message := record.Message
	if req.Message != "" {
		message = req.Message
	}
	diff := record.Diff
	if req.Diff != "" {
		diff = req.Diff
	}

	reputation := s.scorer.Score(ctx, message, diff)

	tokenURI := req.TokenURI
	if tokenURI == "" {
		tokenURI = business.DefaultTokenURI
	}

	payload := business.PermitPayload{
		To:         req.Wallet,
		CommitHash: record.ContentHash,
		Reputation: reputation,
		Expiry:     req.Expiry,
		TokenURI:   tokenURI,
	}

	signed, err := s.signer.Sign(payload, req.ChainID, req.VerifyingContract)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Issued contribution permit",
		zap.String("repo", req.Repo),
		zap.String("sha", req.SHA),
		zap.Int64("reputation", reputation),
		zap.Bool("message_override", req.Message != ""),
		zap.Bool("diff_override", req.Diff != ""))

	return signed, nil
}
