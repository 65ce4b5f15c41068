package commands

import (
	"github.com/spf13/cobra"

	"github.com/proofofcontribution/permit-agent/internal/apperrors"
	"github.com/proofofcontribution/permit-agent/internal/services"
	"github.com/proofofcontribution/permit-agent/internal/types/api/responses"
	"github.com/proofofcontribution/permit-agent/internal/types/business"
)

// NewSignerCommand returns the `permitctl signer` command
func NewSignerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "signer",
		Short: "Print the signing address and EIP-712 domain name and version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			addr, err := services.NewPermitSigner(cfg.Signer.PrivateKey).Address()
			if err != nil {
				return apperrors.WithOp(err, "signer")
			}

			return writeJSON(cmd.OutOrStdout(), responses.SignerResponse{
				Address: addr.Hex(),
				Name:    business.PermitDomainName,
				Version: business.PermitDomainVersion,
			})
		},
	}
}
