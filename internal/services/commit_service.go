package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"go.uber.org/zap"

	"github.com/proofofcontribution/permit-agent/internal/apperrors"
	"github.com/proofofcontribution/permit-agent/internal/interfaces"
	"github.com/proofofcontribution/permit-agent/internal/logger"
	"github.com/proofofcontribution/permit-agent/internal/types/business"
)

// CommitService resolves commits from the code-hosting service
type CommitService struct {
	fetcher interfaces.CommitFetcher
	logger  *zap.Logger
}

// NewCommitService creates a new commit service
func NewCommitService(fetcher interfaces.CommitFetcher) *CommitService {
	return &CommitService{
		fetcher: fetcher,
		logger:  logger.Log,
	}
}

// Resolve fetches the commit and derives its content hash.
// Fetch errors are returned as-is; they already carry not found or upstream codes.
func (s *CommitService) Resolve(ctx context.Context, repo, sha string) (*business.CommitRecord, error) {
	commit, err := s.fetcher.GetCommit(ctx, repo, sha)
	if err != nil {
		return nil, apperrors.WithOp(err, "resolve")
	}

	record := &business.CommitRecord{
		Message:     commit.Commit.MessageText(),
		Diff:        commit.Diff(),
		AuthorEmail: commit.Commit.Author.Email,
		ContentHash: ContentHash(repo, sha, commit.Commit.Author.Email),
	}

	s.logger.Debug("Resolved commit",
		zap.String("repo", repo),
		zap.String("sha", sha),
		zap.String("content_hash", record.ContentHash),
		zap.Int("diff_bytes", len(record.Diff)))

	return record, nil
}

// ContentHash fingerprints a commit identity as 0x-prefixed sha256 of "repo|sha|authorEmail".
// It does not depend on the diff text.
func ContentHash(repo, sha, authorEmail string) string {
	sum := sha256.Sum256([]byte(repo + "|" + sha + "|" + authorEmail))
	return "0x" + hex.EncodeToString(sum[:])
}
