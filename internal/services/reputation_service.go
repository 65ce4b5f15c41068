package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/proofofcontribution/permit-agent/internal/apperrors"
	"github.com/proofofcontribution/permit-agent/internal/interfaces"
	"github.com/proofofcontribution/permit-agent/internal/logger"
	"github.com/proofofcontribution/permit-agent/internal/types/business"
)

const (
	// NeutralReputation is returned when the model answer cannot be used
	NeutralReputation int64 = 50

	// maxPromptDiffRunes caps how much of the diff is sent to the model
	maxPromptDiffRunes = 15000
	maxScoreDigits     = 3
	fixBonus           = 5
	linesPerPoint      = 10

	promptTemplate = "Evaluate this commit for authenticity and substantive contribution on a 1-100 scale.\n" +
		"Message: %s\n\nDiff:\n%s\n\n" +
		"Respond with only the integer score."
)

// ReputationService scores commits with the model when one is configured,
// otherwise with a line-count heuristic. It never returns an error.
type ReputationService struct {
	completer interfaces.Completer
	logger    *zap.Logger
}

// NewReputationService creates a scorer. A nil completer selects the heuristic path.
func NewReputationService(completer interfaces.Completer) *ReputationService {
	return &ReputationService{
		completer: completer,
		logger:    logger.Log,
	}
}

// UsesModel reports whether scores come from the model
func (s *ReputationService) UsesModel() bool {
	return s.completer != nil
}

// Score returns a reputation in [1, 100]
func (s *ReputationService) Score(ctx context.Context, message, diff string) int64 {
	if s.completer == nil {
		return HeuristicScore(message, diff)
	}
	return s.modelScore(ctx, message, diff)
}

func (s *ReputationService) modelScore(ctx context.Context, message, diff string) int64 {
	text, err := s.completer.Complete(ctx, BuildScoringPrompt(message, diff))
	if err != nil {
		s.logger.Warn("Model scoring failed, using neutral score",
			zap.Error(err),
			zap.Int64("score", NeutralReputation))
		return NeutralReputation
	}

	score, err := ParseModelScore(text)
	if err != nil {
		s.logger.Warn("Unparseable model score, using neutral score",
			zap.String("completion", text),
			zap.Error(err))
		return NeutralReputation
	}
	return score
}

// HeuristicScore is floor(lines/10), plus 5 when the message mentions "fix", clamped to [1, 100]
func HeuristicScore(message, diff string) int64 {
	score := int64(CountLines(diff) / linesPerPoint)
	if strings.Contains(strings.ToLower(message), "fix") {
		score += fixBonus
	}
	return business.ClampReputation(score)
}

// BuildScoringPrompt embeds the message and the first 15000 characters of the diff
func BuildScoringPrompt(message, diff string) string {
	return fmt.Sprintf(promptTemplate, message, truncateRunes(diff, maxPromptDiffRunes))
}

// ParseModelScore collects the digits of a completion, keeps the first three
// and clamps the result. Text without digits is a parse error.
func ParseModelScore(text string) (int64, error) {
	var digits strings.Builder
	for i := 0; i < len(text) && digits.Len() < maxScoreDigits; i++ {
		if c := text[i]; c >= '0' && c <= '9' {
			digits.WriteByte(c)
		}
	}
	if digits.Len() == 0 {
		return 0, apperrors.Parsef("no digits in model response %q", text)
	}

	score, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.CodeParse, "invalid model score")
	}
	return business.ClampReputation(score), nil
}

// CountLines counts lines the way a universal-newline splitter does: an empty
// string has none, a trailing terminator does not open a new line, and "\r\n"
// is a single terminator.
func CountLines(s string) int {
	if s == "" {
		return 0
	}

	lines := 0
	pendingCR := false
	lastWasTerminator := false
	for _, r := range s {
		if pendingCR {
			pendingCR = false
			if r == '\n' {
				continue
			}
		}
		switch r {
		case '\r':
			pendingCR = true
			lines++
			lastWasTerminator = true
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			lines++
			lastWasTerminator = true
		default:
			lastWasTerminator = false
		}
	}
	if !lastWasTerminator {
		lines++
	}
	return lines
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
