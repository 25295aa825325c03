package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/notequiz/internal/logger"
	"github.com/abhisek/notequiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "notequiz",
	Short: "Turn study notes into quizzes",
	Long: `notequiz turns pasted study notes into multiple-choice quizzes.

Run without a subcommand to start the terminal client. Use "notequiz serve"
to run the generation server the client talks to.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClient(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NOTEQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file (overrides NOTEQUIZ_LOG_FILE env var)")
	rootCmd.PersistentFlags().String("log-mode", "dev", "Log format: dev or prod")

	rootCmd.Flags().String("server", "", "Generation server URL (overrides NOTEQUIZ_SERVER_URL env var)")
	rootCmd.Flags().Bool("no-splash", false, "Start at the login form")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NOTEQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database selected by resolveDBPath.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.OpenContext(cmd.Context(), dbPath)
}

// newLogger builds the command logger. Without --log-file or
// NOTEQUIZ_LOG_FILE it writes to stderr when stderrOK is set and discards
// otherwise.
func newLogger(cmd *cobra.Command, stderrOK bool) (*logger.Logger, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		path = os.Getenv("NOTEQUIZ_LOG_FILE")
	}
	if path == "" && !stderrOK {
		return logger.Nop(), nil
	}
	mode, _ := cmd.Flags().GetString("log-mode")
	return logger.New(logger.Config{Mode: mode, OutputPath: path})
}
