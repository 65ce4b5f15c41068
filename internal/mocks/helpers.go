package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockCommitResolverForTest creates a new mock CommitResolver for testing
func NewMockCommitResolverForTest(t *testing.T) *MockCommitResolver {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCommitResolver(ctrl)
}

// NewMockReputationScorerForTest creates a new mock ReputationScorer for testing
func NewMockReputationScorerForTest(t *testing.T) *MockReputationScorer {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockReputationScorer(ctrl)
}

// NewMockPermitSignerForTest creates a new mock PermitSigner for testing
func NewMockPermitSignerForTest(t *testing.T) *MockPermitSigner {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPermitSigner(ctrl)
}

// NewMockCommitVerifierForTest creates a new mock CommitVerifier for testing
func NewMockCommitVerifierForTest(t *testing.T) *MockCommitVerifier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCommitVerifier(ctrl)
}

// NewMockCommitFetcherForTest creates a new mock CommitFetcher for testing
func NewMockCommitFetcherForTest(t *testing.T) *MockCommitFetcher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCommitFetcher(ctrl)
}

// NewMockCompleterForTest creates a new mock Completer for testing
func NewMockCompleterForTest(t *testing.T) *MockCompleter {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCompleter(ctrl)
}
