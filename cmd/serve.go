package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/notequiz/internal/llm"
	"github.com/abhisek/notequiz/internal/logger"
	"github.com/abhisek/notequiz/internal/quizgen"
	"github.com/abhisek/notequiz/internal/server"
	"github.com/abhisek/notequiz/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz generation server",
	Long: `Run the HTTP server that stores notes and generates quizzes for them.

The LLM provider is picked from NOTEQUIZ_LLM_PROVIDER or the first *_API_KEY
found in the environment. Without one, or with --sample, the server answers
every note with the built-in sample quizzes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides NOTEQUIZ_ADDR env var)")
	serveCmd.Flags().Bool("sample", false, "Serve the built-in sample quizzes instead of calling an LLM")
}

func runServe(cmd *cobra.Command, args []string) error {
	log, err := newLogger(cmd, true)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	cfg := server.ConfigFromEnv()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	cfg.Version = version

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sample, _ := cmd.Flags().GetBool("sample")
	gen, err := newQuizGenerator(ctx, st.EventRepo(), sample, log)
	if err != nil {
		return err
	}

	return server.New(cfg, st.NoteRepo(), gen, log).Run(ctx)
}

// newQuizGenerator returns the LLM-backed generator, or the sample one when
// asked for or when no provider is configured.
func newQuizGenerator(ctx context.Context, events store.EventRepo, sample bool, log *logger.Logger) (quizgen.Generator, error) {
	if sample {
		log.Info("serving sample quizzes")
		return quizgen.NewSample(), nil
	}
	provider, err := llm.NewProviderFromEnv(ctx, events, log)
	if errors.Is(err, llm.ErrNotConfigured) {
		log.Warn("no LLM provider configured, serving sample quizzes")
		return quizgen.NewSample(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	log.Info("LLM provider ready", "model", provider.ModelID())
	return quizgen.New(provider, quizgen.DefaultConfig(), log), nil
}
