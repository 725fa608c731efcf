package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/vocatinder/internal/annotate"
	"github.com/abhisek/vocatinder/internal/config"
	"github.com/abhisek/vocatinder/internal/exercise"
	"github.com/abhisek/vocatinder/internal/feedback"
	"github.com/abhisek/vocatinder/internal/game"
	"github.com/abhisek/vocatinder/internal/headlines"
	"github.com/abhisek/vocatinder/internal/httpserver"
	"github.com/abhisek/vocatinder/internal/llm"
	"github.com/abhisek/vocatinder/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the quiz HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe wires the full service: store, headline source, annotator,
// LLM tier, pipeline, game machine, HTTP server.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	dbPath := cfg.DB
	if dbPath == "" {
		dbPath, err = resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	source := headlines.NewRSS(cfg.Feeds, st.HeadlineRepo(), cfg.HeadlineTTL)

	// The annotator is a hard dependency: an unreachable sidecar stops
	// the service at startup, and the crude built-in annotator runs
	// only on explicit opt-in.
	var annotator annotate.Annotator
	if cfg.AnnotatorURL != "" {
		client, err := annotate.NewClient(ctx, cfg.AnnotatorURL)
		if err != nil {
			return fmt.Errorf("annotation service: %w", err)
		}
		annotator = client
	} else {
		log.Warn().Msg("using built-in annotator (VOCATINDER_BUILTIN_ANNOTATOR)")
		annotator = annotate.NewStatic()
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Explanations will use canned fallbacks.")
		provider = nil
	}
	if provider == nil {
		log.Info().Msg("no LLM credential found, feedback runs on fallbacks")
	}

	// Shared across request goroutines, so the source must be locked.
	rng := exercise.NewSharedRand(rand.Uint64(), rand.Uint64())
	corruptor := exercise.NewCorruptor(rng)
	strategy := exercise.NewChain(provider, corruptor)
	pipeline := exercise.NewPipeline(source, annotator, strategy, rng)

	machine := game.NewMachine(game.NewMemoryStore(), feedback.NewExplainer(provider))

	srv := httpserver.New(pipeline, machine, httpserver.Config{
		Rounds:       cfg.Rounds,
		ClientOrigin: cfg.ClientOrigin,
	})
	return srv.Start(cfg.Addr)
}
