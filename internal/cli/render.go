package cli

import (
	"fmt"
	"strings"

	"github.com/paisa-ai/paisa/internal/model"
)

// FormatResponse renders an engine response for terminal display. The chat
// TUI and the one-shot query command share this layout.
func FormatResponse(resp model.Response) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n",
		IntentStyle.Render(resp.Intent.Name),
		SubtleStyle.Render(fmt.Sprintf("(confidence %.2f)", resp.Intent.Confidence)))

	for _, entity := range resp.Intent.Entities {
		fmt.Fprintf(&b, "  %s %s\n",
			InfoStyle.Render(string(entity.Type)+":"),
			describeEntity(entity))
	}

	if resp.RequiresClarification {
		fmt.Fprintf(&b, "%s\n", WarningStyle.Render(resp.ClarificationQuestion))
		return b.String()
	}

	if len(resp.SuggestedFollowUps) > 0 {
		b.WriteString(SubtleStyle.Render("You could also ask:") + "\n")
		for _, followUp := range resp.SuggestedFollowUps {
			fmt.Fprintf(&b, "  %s %s\n", SubtleStyle.Render("•"), followUp)
		}
	}

	return b.String()
}

func describeEntity(entity model.Entity) string {
	switch normalized := entity.Normalized.(type) {
	case model.Amount:
		return fmt.Sprintf("₹%s", normalized.Value.String())
	case model.Period:
		return fmt.Sprintf("%s (%s to %s)",
			normalized.Label,
			normalized.Start.Format("2006-01-02"),
			normalized.End.Format("2006-01-02"))
	case model.Text:
		return string(normalized)
	default:
		return entity.Value
	}
}
