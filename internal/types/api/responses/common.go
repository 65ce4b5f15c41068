package responses

// ErrorResponse is the uniform error body returned by every endpoint
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse represents the liveness acknowledgment
type HealthResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

// SignerResponse describes the account and EIP-712 domain used for signing
type SignerResponse struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Version string `json:"version"`
}
