package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/proofofcontribution/permit-agent/internal/client/llm"
	"github.com/proofofcontribution/permit-agent/internal/interfaces"
	"github.com/proofofcontribution/permit-agent/internal/services"
)

// NewScoreCommand returns the `permitctl score` command
func NewScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a commit message and diff",
		Long:  "Scores with the configured model when OPENAI_API_KEY is set, otherwise with the line-count heuristic. Use --diff-file - to read the diff from stdin.",
		RunE:  runScore,
	}

	cmd.Flags().String("diff-file", "", "file holding the unified diff, or - for stdin")
	cmd.Flags().Bool("heuristic", false, "force the heuristic scorer")
	cmd.Flags().String("message", "", "commit message")

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	message, _ := cmd.Flags().GetString("message")
	diffFile, _ := cmd.Flags().GetString("diff-file")
	heuristic, _ := cmd.Flags().GetBool("heuristic")

	diff, err := readDiff(cmd.InOrStdin(), diffFile)
	if err != nil {
		return err
	}

	var completer interfaces.Completer
	if !heuristic {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.ModelEnabled() {
			completer = llm.NewClient(llm.Options{
				APIKey:  cfg.OpenAI.APIKey,
				BaseURL: cfg.OpenAI.BaseURL,
				Model:   cfg.OpenAI.Model,
				Timeout: cfg.OpenAI.Timeout,
			})
		}
	}

	score := services.NewReputationService(completer).Score(cmd.Context(), message, diff)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), score)
	return err
}

func readDiff(stdin io.Reader, path string) (string, error) {
	switch path {
	case "":
		return "", nil
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading diff from stdin: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(path) //nolint:gosec // G304: operator-supplied path
		if err != nil {
			return "", fmt.Errorf("reading diff file: %w", err)
		}
		return string(b), nil
	}
}
