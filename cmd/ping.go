package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/notequiz/internal/notesapi"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the generation server is up and compatible",
	RunE: func(cmd *cobra.Command, args []string) error {
		serverURL := resolveServerURL(cmd)
		timeout, _ := cmd.Flags().GetDuration("timeout")

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		h, err := notesapi.New(serverURL).Health(ctx)
		if err != nil {
			return fmt.Errorf("ping %s: %w", serverURL, err)
		}
		if err := notesapi.CheckCompatible(version, h.Version); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is %s (server %s, client %s)\n", serverURL, h.Status, h.Version, version)
		return nil
	},
}

func init() {
	pingCmd.Flags().String("server", "", "Generation server URL (overrides NOTEQUIZ_SERVER_URL env var)")
	pingCmd.Flags().Duration("timeout", 5*time.Second, "How long to wait for the server")
}
