package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// matchReport renders the stats and full event log of the current match.
func matchReport(seed int64, stats *MatchStats, sl *SimLog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Zone Royale match report ---\n")
	fmt.Fprintf(&b, "seed=%d\n", seed)
	b.WriteString(stats.Format())
	b.WriteString("\n== events ==\n")
	b.WriteString(sl.Format())
	return b.String()
}

// setClipboardText copies text to the system clipboard.
func setClipboardText(text string) error {
	if text == "" {
		text = " "
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy match report: %w", err)
	}
	return nil
}
