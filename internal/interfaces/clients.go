package interfaces

import (
	"context"

	"github.com/proofofcontribution/permit-agent/internal/client/github"
)

// CommitFetcher retrieves commit details from the code-hosting service
type CommitFetcher interface {
	GetCommit(ctx context.Context, repo, sha string) (*github.CommitResponse, error)
}

// Completer sends a single prompt to the evaluative model and returns its text
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
