package helpers

import "strings"

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = "prod"
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// NormalizeStage lowercases and trims a stage value, defaulting to local when empty.
func NormalizeStage(stage string) string {
	s := strings.ToLower(strings.TrimSpace(stage))
	if s == "" {
		return StageLocal
	}
	return s
}

// IsDevelopment reports whether verbose request logging should be enabled.
func IsDevelopment(stage string) bool {
	return stage != StageProd
}
