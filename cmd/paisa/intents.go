package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/paisa-ai/paisa/internal/cli"
)

func intentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intents",
		Short: "List the intent catalog",
		Long:  `Display every intent the classifier recognizes, with pattern counts and example queries.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Intent"),
				cli.BoldStyle.Render("Patterns"),
				cli.BoldStyle.Render("Example"))
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				strings.Repeat("-", 20),
				strings.Repeat("-", 8),
				strings.Repeat("-", 40))

			for _, intent := range cat.Intents {
				example := ""
				if len(intent.Examples) > 0 {
					example = intent.Examples[0]
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", intent.Name, len(intent.Patterns), example)
			}

			return nil
		},
	}
}
