package main

import (
	"github.com/spf13/cobra"

	"github.com/paisa-ai/paisa/internal/tui"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Open a multi-turn conversation with the engine. Context carries across
turns, so "how can I reduce that?" after a food-spending question reuses the
food category. Type /reset to start the conversation over.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			engine, _, err := buildEngine()
			if err != nil {
				return err
			}
			return tui.Run(engine)
		},
	}
}
