package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/proofofcontribution/permit-agent/internal/apperrors"
	"github.com/proofofcontribution/permit-agent/internal/mocks"
	"github.com/proofofcontribution/permit-agent/internal/services"
)

func diffOfLines(n int) string {
	return strings.Repeat("+line\n", n)
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"single without newline", "a", 1},
		{"single with trailing newline", "a\n", 1},
		{"two lines", "a\nb", 2},
		{"crlf counts once", "a\r\nb\r\n", 2},
		{"bare carriage return", "a\rb", 2},
		{"blank lines", "\n\n", 2},
		{"mixed terminators", "a\n\rb\r\n\nc", 5},
		{"unicode separator", "a\u2028b", 2},
		{"long line", strings.Repeat("x", 200000), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.CountLines(tt.in))
		})
	}
}

func TestHeuristicScore(t *testing.T) {
	tests := []struct {
		name    string
		message string
		diff    string
		want    int64
	}{
		{"empty diff clamps to minimum", "", "", 1},
		{"nine lines still minimum", "update", diffOfLines(9), 1},
		{"200 lines no fix", "add feature", diffOfLines(200), 20},
		{"200 lines with fix", "Fix: typo", diffOfLines(200), 25},
		{"fix only", "hotfix", "", 5},
		{"fix anywhere case insensitive", "PREFIX change", diffOfLines(50), 10},
		{"huge diff clamps", "fix", diffOfLines(5000), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.HeuristicScore(tt.message, tt.diff))
		})
	}
}

func TestReputationService_HeuristicPath(t *testing.T) {
	svc := services.NewReputationService(nil)
	assert.False(t, svc.UsesModel())
	assert.Equal(t, int64(20), svc.Score(context.Background(), "add feature", diffOfLines(200)))
}

func TestParseModelScore(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int64
		wantErr bool
	}{
		{"plain", "87", 87, false},
		{"whitespace", " 42\n", 42, false},
		{"above range clamps", "250", 100, false},
		{"zero clamps up", "0", 1, false},
		{"only first three digits", "12345", 100, false},
		{"digits spread across text", "Score: 4, 2", 42, false},
		{"preamble digits win", "Out of 100: 87", 100, false},
		{"leading zeros", "007", 7, false},
		{"no digits", "excellent", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.ParseModelScore(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.CodeParse))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReputationService_ModelPath(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		completion string
		err        error
		want       int64
	}{
		{"uses model score", "87", nil, 87},
		{"clamps high", "250", nil, 100},
		{"clamps low", "0", nil, 1},
		{"no digits falls back to neutral", "I cannot rate this", nil, 50},
		{"empty completion falls back to neutral", "", nil, 50},
		{"api error falls back to neutral", "", errors.New("503 service unavailable"), 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer := mocks.NewMockCompleterForTest(t)
			completer.EXPECT().Complete(ctx, gomock.Any()).Return(tt.completion, tt.err)

			svc := services.NewReputationService(completer)
			assert.True(t, svc.UsesModel())
			assert.Equal(t, tt.want, svc.Score(ctx, "fix bug", diffOfLines(10)))
		})
	}
}

func TestReputationService_ModelPromptTruncatesDiff(t *testing.T) {
	ctx := context.Background()
	completer := mocks.NewMockCompleterForTest(t)

	// multi-byte runes make sure truncation counts characters, not bytes
	diff := strings.Repeat("é", 20000)

	completer.EXPECT().Complete(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, prompt string) (string, error) {
		assert.True(t, strings.HasPrefix(prompt, "Evaluate this commit for authenticity and substantive contribution on a 1-100 scale.\nMessage: refactor\n\nDiff:\n"))
		assert.Equal(t, 15000, strings.Count(prompt, "é"))
		assert.True(t, strings.HasSuffix(prompt, "Respond with only the integer score."))
		return "60", nil
	})

	assert.Equal(t, int64(60), services.NewReputationService(completer).Score(ctx, "refactor", diff))
}

func TestBuildScoringPrompt_ShortDiffUntouched(t *testing.T) {
	prompt := services.BuildScoringPrompt("msg", "+a\n-b")
	assert.Contains(t, prompt, "Message: msg\n\nDiff:\n+a\n-b\n\n")
}
