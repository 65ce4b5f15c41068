package interfaces

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/proofofcontribution/permit-agent/internal/types/api/requests"
	"github.com/proofofcontribution/permit-agent/internal/types/business"
)

//go:generate mockgen -source=services.go -destination=../mocks/mock_services.go -package=mocks
//go:generate mockgen -source=clients.go -destination=../mocks/mock_clients.go -package=mocks

// CommitResolver turns a repo and sha into a commit record with its content hash
type CommitResolver interface {
	Resolve(ctx context.Context, repo, sha string) (*business.CommitRecord, error)
}

// ReputationScorer grades a commit. Always returns a value in [1, 100].
type ReputationScorer interface {
	Score(ctx context.Context, message, diff string) int64
}

// PermitSigner produces EIP-712 signatures over permit payloads
type PermitSigner interface {
	Sign(payload business.PermitPayload, chainID int64, verifyingContract string) (*business.SignedPermit, error)
	Address() (common.Address, error)
}

// CommitVerifier runs the full resolve, score and sign pipeline
type CommitVerifier interface {
	VerifyCommit(ctx context.Context, req requests.VerifyCommitRequest) (*business.SignedPermit, error)
}
