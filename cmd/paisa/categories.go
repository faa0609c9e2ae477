package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/paisa-ai/paisa/internal/category"
	"github.com/paisa-ai/paisa/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Inspect canonical spending categories",
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(matchCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List canonical categories and their aliases",
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Aliases"))

			for _, name := range category.Names() {
				fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(category.Aliases(name), ", "))
			}

			return nil
		},
	}
}

func matchCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match [text...]",
		Short: "Resolve a free-form mention to a canonical category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			input := strings.Join(args, " ")

			name, ok := category.Match(input)
			if !ok {
				fmt.Println(cli.SubtleStyle.Render("no matching category"))
				return nil
			}

			fmt.Println(cli.IntentStyle.Render(name))
			return nil
		},
	}
}
