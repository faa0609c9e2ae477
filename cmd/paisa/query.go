package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paisa-ai/paisa/internal/classify"
	"github.com/paisa-ai/paisa/internal/cli"
	"github.com/paisa-ai/paisa/internal/conversation"
	"github.com/paisa-ai/paisa/internal/extract"
)

func queryCmd() *cobra.Command {
	var (
		jsonOut   bool
		multi     bool
		sentiment bool
	)

	cmd := &cobra.Command{
		Use:   "query [text...]",
		Short: "Classify a single query",
		Long: `Run one query through the engine with a fresh conversation and print the
classified intent, extracted entities and follow-up suggestions.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			classifier := classify.New(cat, extract.New(cat))
			text := strings.Join(args, " ")

			if multi {
				intents := classifier.ClassifyAll(text)
				if len(intents) == 0 {
					fmt.Println(cli.SubtleStyle.Render("No confident intent in any part of the query."))
					return nil
				}
				for _, intent := range intents {
					fmt.Printf("%s %s\n",
						cli.IntentStyle.Render(intent.Name),
						cli.SubtleStyle.Render(fmt.Sprintf("(confidence %.2f, %d entities)", intent.Confidence, len(intent.Entities))))
				}
				return nil
			}

			engine := conversation.NewEngine(cat, classifier)
			mgr := conversation.NewManager()
			resp := engine.Process(text, mgr)

			if jsonOut {
				encoded, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode response: %w", err)
				}
				fmt.Println(string(encoded))
				return nil
			}

			fmt.Print(cli.FormatResponse(resp))

			if sentiment {
				s := classify.AnalyzeSentiment(text)
				fmt.Printf("%s %s (%.2f)\n", cli.SubtleStyle.Render("sentiment:"), s.Label, s.Score)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the raw response as JSON")
	cmd.Flags().BoolVar(&multi, "multi", false, "split compound queries and classify each part")
	cmd.Flags().BoolVar(&sentiment, "sentiment", false, "also print the query's sentiment")

	return cmd
}
