package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocatinder/internal/annotate"
	"github.com/abhisek/vocatinder/internal/exercise"
	"github.com/abhisek/vocatinder/internal/headlines"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate challenges without a server (no database)",
	Long: `Generate a batch of quiz challenges and print them.

This is a stateless developer tool: no database, no sessions, no events.
Useful for evaluating challenge quality against live feeds or sample text.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("level", "intermediate", "Complexity level: beginner, intermediate, or advanced")
	previewCmd.Flags().Int("count", 5, "Number of challenges to generate")
	previewCmd.Flags().Bool("offline", false, "Use the static fallback pool instead of live feeds")
	previewCmd.Flags().Uint64("seed", 0, "Seed for deterministic corruption (0 = random)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	levelVal, _ := cmd.Flags().GetString("level")
	count, _ := cmd.Flags().GetInt("count")
	offline, _ := cmd.Flags().GetBool("offline")
	seed, _ := cmd.Flags().GetUint64("seed")

	level := exercise.ParseLevel(levelVal)

	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	var challenges []exercise.Challenge
	if offline {
		challenges = exercise.FallbackChallenges(count)
	} else {
		// Built-in annotator and the heuristic tier only: preview needs
		// no sidecar, no LLM credential.
		source := headlines.NewRSS(nil, nil, headlines.DefaultTTL)
		strategy := exercise.NewChain(nil, exercise.NewCorruptor(rng))
		pipeline := exercise.NewPipeline(source, annotate.NewStatic(), strategy, rng)

		var err error
		challenges, err = pipeline.Generate(context.Background(), count, level)
		if err != nil {
			return fmt.Errorf("generate challenges: %w", err)
		}
		challenges = exercise.TopUp(challenges, count)
	}

	fmt.Printf("Level: %s (%d challenges)\n\n", level, len(challenges))
	for i, ch := range challenges {
		status := "corrupted"
		if ch.IsCorrect {
			status = "clean"
		}
		fmt.Printf("── Challenge %d/%d (%s) ──\n", i+1, len(challenges), status)
		fmt.Printf("Display:  %s\n", ch.Display)
		if ch.Display != ch.Original {
			fmt.Printf("Original: %s\n", ch.Original)
		}
		fmt.Printf("Target:   %s (%s %s)\n\n", ch.Target.Word, ch.Target.Gender.Article(), ch.Target.Gender)
	}
	return nil
}
