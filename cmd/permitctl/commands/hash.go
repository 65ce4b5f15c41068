package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/proofofcontribution/permit-agent/internal/services"
)

// NewHashCommand returns the `permitctl hash` command
func NewHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <owner/name> <sha> <author-email>",
		Short: "Print the content hash a permit would carry for a commit",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), services.ContentHash(args[0], args[1], args[2]))
			return err
		},
	}
}
