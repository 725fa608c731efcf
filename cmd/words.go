package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocatinder/internal/llm"
	"github.com/abhisek/vocatinder/internal/store"
	"github.com/abhisek/vocatinder/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Generate a gendered noun deck for the frontend",
	Long: `Ask the configured LLM for a deck of common French nouns with their
gender and write it as JSON. Requires an LLM credential.`,
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().Int("count", words.DefaultCount, "Number of words in the deck")
	wordsCmd.Flags().String("out", "words.json", "Output file path ('-' for stdout)")
}

func runWords(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	out, _ := cmd.Flags().GetString("out")

	ctx := context.Background()

	// Event logging is best-effort here: a missing database must not
	// block deck generation.
	var repo store.EventRepo
	if dbPath, err := resolveDBPath(cmd); err == nil {
		if st, err := store.Open(dbPath); err == nil {
			defer st.Close()
			repo = st.EventRepo()
		}
	}

	provider, err := llm.NewProviderFromEnv(ctx, repo)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	if provider == nil {
		return fmt.Errorf("no LLM credential configured: set MISTRAL_API_KEY (or another provider key)")
	}

	deck, err := words.NewGenerator(provider).Generate(ctx, count)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(map[string]any{"words": deck}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	encoded = append(encoded, '\n')

	if out == "-" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Printf("Wrote %d words to %s\n", len(deck), out)
	return nil
}
