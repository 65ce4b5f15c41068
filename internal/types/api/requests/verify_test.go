package requests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCommitRequest_UnmarshalJSON(t *testing.T) {
	const (
		contractA = "0x00000000000000000000000000000000000000aa"
		contractB = "0x00000000000000000000000000000000000000bb"
	)

	tests := []struct {
		name         string
		body         string
		wantChain    int64
		wantContract string
		wantURI      string
	}{
		{
			name:         "snake case fields",
			body:         `{"repo":"a/b","sha":"deadbeef","chain_id":5,"verifying_contract":"` + contractA + `","tokenURI":"ipfs://x"}`,
			wantChain:    5,
			wantContract: contractA,
			wantURI:      "ipfs://x",
		},
		{
			name:         "camel case aliases",
			body:         `{"repo":"a/b","sha":"deadbeef","chainId":10,"verifyingContract":"` + contractB + `","token_uri":"ipfs://y"}`,
			wantChain:    10,
			wantContract: contractB,
			wantURI:      "ipfs://y",
		},
		{
			name:         "primary spelling wins",
			body:         `{"chain_id":1,"chainId":2,"verifying_contract":"` + contractA + `","verifyingContract":"` + contractB + `"}`,
			wantChain:    1,
			wantContract: contractA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req VerifyCommitRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.wantChain, req.ChainID)
			assert.Equal(t, tt.wantContract, req.VerifyingContract)
			assert.Equal(t, tt.wantURI, req.TokenURI)
		})
	}
}

func TestVerifyCommitRequest_UnmarshalKeepsOtherFields(t *testing.T) {
	var req VerifyCommitRequest
	body := `{"repo":"a/b","sha":"deadbeef","message":"m","diff":"d","wallet":"0x1","expiry":1700000000}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, "a/b", req.Repo)
	assert.Equal(t, "deadbeef", req.SHA)
	assert.Equal(t, "m", req.Message)
	assert.Equal(t, "d", req.Diff)
	assert.Equal(t, "0x1", req.Wallet)
	assert.Equal(t, int64(1700000000), req.Expiry)
}

func TestVerifyCommitRequest_UnmarshalRejectsBadTypes(t *testing.T) {
	var req VerifyCommitRequest
	assert.Error(t, json.Unmarshal([]byte(`{"expiry":"soon"}`), &req))
}
