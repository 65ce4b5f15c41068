// Package commands implements permitctl, an operator CLI that runs the permit
// pipeline without the HTTP layer.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/proofofcontribution/permit-agent/internal/config"
	"github.com/proofofcontribution/permit-agent/internal/logger"
)

const configFlag = "config"

// NewRootCmd constructs the permitctl root command
func NewRootCmd() *cobra.Command {
	version := os.Getenv("PERMITCTL_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "permitctl",
		Short:         "Score commits and sign contribution permits from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String(configFlag, "", "path to a YAML config file (overrides POC_CONFIG_FILE)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log to stderr")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the permitctl version",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "permitctl version %s\n", version)
		},
	})
	cmd.AddCommand(NewVerifyCommand())
	cmd.AddCommand(NewHashCommand())
	cmd.AddCommand(NewScoreCommand())
	cmd.AddCommand(NewSignerCommand())

	return cmd
}

// loadConfig reads configuration honoring --config and turns on logging for --verbose
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var opts []config.Option
	if path, _ := cmd.Flags().GetString(configFlag); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.InitLoggerWithConfig(logger.LoggerConfig{Level: cfg.LogLevel, Stage: cfg.Stage, EnableColor: true})
	}
	return cfg, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
