package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/proofofcontribution/permit-agent/internal/apperrors"
	"github.com/proofofcontribution/permit-agent/internal/server"
	"github.com/proofofcontribution/permit-agent/internal/types/api/requests"
)

// NewVerifyCommand returns the `permitctl verify` command
func NewVerifyCommand() *cobra.Command {
	var req requests.VerifyCommitRequest

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Resolve, score and sign a permit for one commit",
		Long:  "Runs the same pipeline as POST /verify_commit and prints the signed permit as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := validateVerifyFlags(req); err != nil {
				return err
			}

			deps := server.BuildDependencies(cfg)
			signed, err := deps.Verifier.VerifyCommit(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("%s: %s", apperrors.CodeOf(err), apperrors.Detail(err))
			}
			return writeJSON(cmd.OutOrStdout(), signed)
		},
	}

	// Flags in alphabetical order for deterministic help output
	cmd.Flags().Int64Var(&req.ChainID, "chain-id", 0, "EIP-712 domain chain id")
	cmd.Flags().StringVar(&req.VerifyingContract, "contract", "", "verifying contract address")
	cmd.Flags().StringVar(&req.Diff, "diff", "", "score this diff instead of the fetched one")
	cmd.Flags().Int64Var(&req.Expiry, "expiry", 0, "permit expiry as unix seconds")
	cmd.Flags().StringVar(&req.Message, "message", "", "score this message instead of the fetched one")
	cmd.Flags().StringVar(&req.Repo, "repo", "", "repository in owner/name form")
	cmd.Flags().StringVar(&req.SHA, "sha", "", "commit sha")
	cmd.Flags().StringVar(&req.TokenURI, "token-uri", "", "token URI (default ipfs://pending)")
	cmd.Flags().StringVar(&req.Wallet, "wallet", "", "recipient wallet address")

	for _, name := range []string{"chain-id", "contract", "expiry", "repo", "sha", "wallet"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func validateVerifyFlags(req requests.VerifyCommitRequest) error {
	if req.Expiry <= 0 {
		return fmt.Errorf("--expiry must be greater than 0")
	}
	if req.ChainID <= 0 {
		return fmt.Errorf("--chain-id must be greater than 0")
	}
	return nil
}
