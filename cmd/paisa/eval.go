package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/paisa-ai/paisa/internal/classify"
	"github.com/paisa-ai/paisa/internal/cli"
	"github.com/paisa-ai/paisa/internal/extract"
)

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Score the classifier against the catalog's example queries",
		Long: `Run every example utterance in the catalog through the classifier and
report how often each intent's own examples classify back to it. Some
examples legitimately sit on the boundary between two intents; the report
shows where.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			classifier := classify.New(cat, extract.New(cat))

			total := 0
			for _, intent := range cat.Intents {
				total += len(intent.Examples)
			}

			bar := progressbar.Default(int64(total), "evaluating")

			type result struct {
				name    string
				correct int
				total   int
			}
			results := make([]result, 0, len(cat.Intents))
			correctTotal := 0

			for _, intent := range cat.Intents {
				r := result{name: intent.Name, total: len(intent.Examples)}
				for _, example := range intent.Examples {
					got := classifier.Classify(example)
					if got.Name == intent.Name {
						r.correct++
						correctTotal++
					}
					_ = bar.Add(1)
				}
				results = append(results, r)
			}
			_ = bar.Finish()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.BoldStyle.Render("Intent"),
				cli.BoldStyle.Render("Examples classified back"))
			for _, r := range results {
				line := fmt.Sprintf("%d/%d", r.correct, r.total)
				if r.correct < r.total {
					line = cli.WarningStyle.Render(line)
				}
				fmt.Fprintf(w, "%s\t%s\n", r.name, line)
			}
			fmt.Fprintf(w, "%s\t%s\n",
				cli.BoldStyle.Render("total"),
				cli.BoldStyle.Render(fmt.Sprintf("%d/%d", correctTotal, total)))

			return nil
		},
	}
}
