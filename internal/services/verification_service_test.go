package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/proofofcontribution/permit-agent/internal/apperrors"
	"github.com/proofofcontribution/permit-agent/internal/client/github"
	"github.com/proofofcontribution/permit-agent/internal/mocks"
	"github.com/proofofcontribution/permit-agent/internal/services"
	"github.com/proofofcontribution/permit-agent/internal/types/api/requests"
	"github.com/proofofcontribution/permit-agent/internal/types/business"
)

func baseRequest() requests.VerifyCommitRequest {
	return requests.VerifyCommitRequest{
		Repo:              "a/b",
		SHA:               "deadbeef",
		Wallet:            testWallet,
		Expiry:            1700000000,
		ChainID:           testChainID,
		VerifyingContract: testContract,
	}
}

func TestVerificationService_VerifyCommit(t *testing.T) {
	ctx := context.Background()
	record := &business.CommitRecord{
		Message:     "fix bug",
		Diff:        diffOfLines(50),
		ContentHash: services.ContentHash("a/b", "deadbeef", "dev@example.com"),
		AuthorEmail: "dev@example.com",
	}

	t.Run("uses fetched message and diff by default", func(t *testing.T) {
		resolver := mocks.NewMockCommitResolverForTest(t)
		scorer := mocks.NewMockReputationScorerForTest(t)
		signer := mocks.NewMockPermitSignerForTest(t)

		resolver.EXPECT().Resolve(ctx, "a/b", "deadbeef").Return(record, nil)
		scorer.EXPECT().Score(ctx, "fix bug", record.Diff).Return(int64(10))
		signer.EXPECT().Sign(business.PermitPayload{
			To:         testWallet,
			CommitHash: record.ContentHash,
			Reputation: 10,
			Expiry:     1700000000,
			TokenURI:   "ipfs://pending",
		}, testChainID, testContract).DoAndReturn(func(p business.PermitPayload, _ int64, _ string) (*business.SignedPermit, error) {
			return &business.SignedPermit{PermitPayload: p, Signature: "0xsig"}, nil
		})

		signed, err := services.NewVerificationService(resolver, scorer, signer).VerifyCommit(ctx, baseRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(10), signed.Reputation)
		assert.Equal(t, "ipfs://pending", signed.TokenURI)
		assert.Equal(t, "0xsig", signed.Signature)
	})

	t.Run("overrides feed the scorer and token uri passes through", func(t *testing.T) {
		resolver := mocks.NewMockCommitResolverForTest(t)
		scorer := mocks.NewMockReputationScorerForTest(t)
		signer := mocks.NewMockPermitSignerForTest(t)

		req := baseRequest()
		req.Message = "custom"
		req.Diff = "+only"
		req.TokenURI = "ipfs://bafy"

		resolver.EXPECT().Resolve(ctx, "a/b", "deadbeef").Return(record, nil)
		scorer.EXPECT().Score(ctx, "custom", "+only").Return(int64(1))
		signer.EXPECT().Sign(gomock.Any(), testChainID, testContract).DoAndReturn(func(p business.PermitPayload, _ int64, _ string) (*business.SignedPermit, error) {
			assert.Equal(t, record.ContentHash, p.CommitHash)
			assert.Equal(t, "ipfs://bafy", p.TokenURI)
			return &business.SignedPermit{PermitPayload: p, Signature: "0xsig"}, nil
		})

		_, err := services.NewVerificationService(resolver, scorer, signer).VerifyCommit(ctx, req)
		require.NoError(t, err)
	})

	t.Run("resolver failure stops the pipeline", func(t *testing.T) {
		resolver := mocks.NewMockCommitResolverForTest(t)
		scorer := mocks.NewMockReputationScorerForTest(t)
		signer := mocks.NewMockPermitSignerForTest(t)

		resolver.EXPECT().Resolve(ctx, "a/b", "deadbeef").Return(nil, apperrors.Upstreamf("github returned status 500"))

		signed, err := services.NewVerificationService(resolver, scorer, signer).VerifyCommit(ctx, baseRequest())
		assert.Nil(t, signed)
		assert.Equal(t, apperrors.CodeUpstream, apperrors.CodeOf(err))
	})

	t.Run("signer failure returns no partial permit", func(t *testing.T) {
		resolver := mocks.NewMockCommitResolverForTest(t)
		scorer := mocks.NewMockReputationScorerForTest(t)
		signer := mocks.NewMockPermitSignerForTest(t)

		resolver.EXPECT().Resolve(ctx, "a/b", "deadbeef").Return(record, nil)
		scorer.EXPECT().Score(ctx, gomock.Any(), gomock.Any()).Return(int64(10))
		signer.EXPECT().Sign(gomock.Any(), testChainID, testContract).Return(nil, apperrors.Configurationf("signing key not configured"))

		signed, err := services.NewVerificationService(resolver, scorer, signer).VerifyCommit(ctx, baseRequest())
		assert.Nil(t, signed)
		assert.Equal(t, apperrors.CodeConfiguration, apperrors.CodeOf(err))
	})
}

// fakeGitHub serves a single commit with the given message and line count
func fakeGitHub(t *testing.T, message string, lines int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/a/b/commits/deadbeef" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		patch := strings.TrimSuffix(diffOfLines(lines), "\n")
		body, err := json.Marshal(map[string]interface{}{
			"sha": "deadbeef",
			"commit": map[string]interface{}{
				"message": message,
				"author":  map[string]string{"name": "Dev", "email": "dev@example.com"},
			},
			"files": []map[string]string{{"filename": "main.go", "patch": patch}},
		})
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func newPipeline(baseURL, key string) *services.VerificationService {
	client := github.NewClient(github.Options{BaseURL: baseURL})
	return services.NewVerificationService(
		services.NewCommitService(client),
		services.NewReputationService(nil),
		services.NewPermitSigner(key),
	)
}

func TestVerificationService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	server := fakeGitHub(t, "fix bug", 50)
	pipeline := newPipeline(server.URL, testKeyHex)

	signed, err := pipeline.VerifyCommit(ctx, baseRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(10), signed.Reputation)
	assert.Equal(t, "ipfs://pending", signed.TokenURI)
	assert.Equal(t, testWallet, signed.To)
	assert.Equal(t, int64(1700000000), signed.Expiry)
	assert.Equal(t, services.ContentHash("a/b", "deadbeef", "dev@example.com"), signed.CommitHash)

	sig, err := hexutil.Decode(signed.Signature)
	require.NoError(t, err)
	assert.Len(t, sig, 65)

	t.Run("overrides change score but not commit hash", func(t *testing.T) {
		req := baseRequest()
		req.Message = "add feature"
		req.Diff = diffOfLines(300)

		overridden, err := pipeline.VerifyCommit(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(30), overridden.Reputation)
		assert.Equal(t, signed.CommitHash, overridden.CommitHash)
		assert.NotEqual(t, signed.Signature, overridden.Signature)
	})

	t.Run("unknown commit is not found", func(t *testing.T) {
		req := baseRequest()
		req.SHA = "cafebabe"

		_, err := pipeline.VerifyCommit(ctx, req)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})
}

func TestVerificationService_EndToEndWithoutKey(t *testing.T) {
	server := fakeGitHub(t, "fix bug", 50)

	_, err := newPipeline(server.URL, "").VerifyCommit(context.Background(), baseRequest())
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeConfiguration, apperrors.CodeOf(err))
	assert.Equal(t, "signing key not configured", apperrors.Detail(err))
}
