package requests

import "encoding/json"

// VerifyCommitRequest represents the request body for issuing a contribution permit
type VerifyCommitRequest struct {
	Repo              string `json:"repo" binding:"required,repo_slug" example:"octocat/hello-world"`
	SHA               string `json:"sha" binding:"required,hexsha" example:"7fd1a60b01f91b314f59955a4e4d4e80d8edf11d"`
	Message           string `json:"message,omitempty"` // overrides the fetched commit message for scoring
	Diff              string `json:"diff,omitempty"`    // overrides the fetched diff for scoring
	Wallet            string `json:"wallet" binding:"required,eth_addr"`
	Expiry            int64  `json:"expiry" binding:"required,gt=0" example:"1700000000"`
	ChainID           int64  `json:"chain_id" binding:"required,gt=0" example:"1"`
	VerifyingContract string `json:"verifying_contract" binding:"required,eth_addr"`
	TokenURI          string `json:"tokenURI,omitempty"`
}

// UnmarshalJSON accepts camelCase aliases for chain_id and verifying_contract
// and a snake_case alias for tokenURI. The primary spelling wins when both are sent.
func (r *VerifyCommitRequest) UnmarshalJSON(data []byte) error {
	type plain VerifyCommitRequest
	var aux struct {
		plain
		ChainIDAlias           *int64  `json:"chainId"`
		VerifyingContractAlias *string `json:"verifyingContract"`
		TokenURIAlias          *string `json:"token_uri"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*r = VerifyCommitRequest(aux.plain)
	if r.ChainID == 0 && aux.ChainIDAlias != nil {
		r.ChainID = *aux.ChainIDAlias
	}
	if r.VerifyingContract == "" && aux.VerifyingContractAlias != nil {
		r.VerifyingContract = *aux.VerifyingContractAlias
	}
	if r.TokenURI == "" && aux.TokenURIAlias != nil {
		r.TokenURI = *aux.TokenURIAlias
	}
	return nil
}
