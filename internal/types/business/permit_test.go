package business

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofofcontribution/permit-agent/internal/apperrors"
)

func validPayload() PermitPayload {
	return PermitPayload{
		To:         "0x" + strings.Repeat("a", 40),
		CommitHash: "0x" + strings.Repeat("0f", 32),
		Reputation: 42,
		Expiry:     1700000000,
		TokenURI:   DefaultTokenURI,
	}
}

func TestPermitPayload_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PermitPayload)
		ok     bool
	}{
		{"valid", func(p *PermitPayload) {}, true},
		{"bad address", func(p *PermitPayload) { p.To = "0x123" }, false},
		{"short hash", func(p *PermitPayload) { p.CommitHash = "0xdead" }, false},
		{"hash without prefix", func(p *PermitPayload) { p.CommitHash = strings.Repeat("ab", 33) }, false},
		{"reputation too low", func(p *PermitPayload) { p.Reputation = 0 }, false},
		{"reputation too high", func(p *PermitPayload) { p.Reputation = 101 }, false},
		{"zero expiry", func(p *PermitPayload) { p.Expiry = 0 }, false},
		{"blank token uri", func(p *PermitPayload) { p.TokenURI = "  " }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(&p)
			err := p.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
		})
	}
}

func TestNewPermitDomain(t *testing.T) {
	d := NewPermitDomain(1, "0x"+strings.Repeat("b", 40))
	assert.Equal(t, "ProofOfContribution", d.Name)
	assert.Equal(t, "1", d.Version)
	require.NoError(t, d.Validate())

	assert.Error(t, NewPermitDomain(0, d.VerifyingContract).Validate())
	assert.Error(t, NewPermitDomain(1, "nope").Validate())
}

func TestClampReputation(t *testing.T) {
	assert.Equal(t, int64(1), ClampReputation(-5))
	assert.Equal(t, int64(1), ClampReputation(0))
	assert.Equal(t, int64(55), ClampReputation(55))
	assert.Equal(t, int64(100), ClampReputation(999))
}
