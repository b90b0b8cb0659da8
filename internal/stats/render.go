package stats

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/vidyajay1/Lumora/internal/model"
)

const terminalWidthBackup = 80

// TerminalWidth probes the stdout terminal width, falling back to 80 columns.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// RenderChallenges prints a challenge batch as plain text clamped to width.
func RenderChallenges(w io.Writer, day string, challenges []model.Challenge, width int) error {
	if len(challenges) == 0 {
		_, err := fmt.Fprintln(w, "No challenges generated.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Challenges for %s\n\n", day); err != nil {
		return err
	}
	for i, ch := range challenges {
		status := "[ ]"
		if ch.Completed {
			status = "[x]"
		}
		if _, err := fmt.Fprintf(w, "%d. %s %s\n", i+1, status, Truncate(ch.Title, width-7)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   %s\n", Truncate(ch.Description, width-4)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   %s · %s · ~%d min · id %s\n\n",
			ch.Category, ch.Difficulty, ch.EstimatedTime, ch.ID); err != nil {
			return err
		}
	}
	return nil
}

// RenderHistory prints the generated-challenge history log as a table.
func RenderHistory(w io.Writer, history []model.Challenge, width int) error {
	if len(history) == 0 {
		_, err := fmt.Fprintln(w, "No challenge history yet.")
		return err
	}
	headers := []string{"Date", "Title", "Category", "Done"}
	rows := make([][]string, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		ch := history[i]
		done := ""
		if ch.Completed {
			done = "yes"
		}
		rows = append(rows, []string{
			ch.CreatedAt.Format("2006-01-02"),
			Truncate(ch.Title, width/2),
			ch.Category,
			done,
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{3: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary prints headline progress numbers.
func RenderSummary(w io.Writer, summary Summary) error {
	if _, err := fmt.Fprintln(w, "Progress"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Current streak: %d day(s)\n", summary.CurrentStreak); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Completed challenges: %d\n", summary.TotalChallenges); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Success rate: %.0f%%\n", summary.SuccessRate*100); err != nil {
		return err
	}
	if !summary.JoinDate.IsZero() {
		if _, err := fmt.Fprintf(w, "Member since: %s\n", summary.JoinDate.Format("Jan 2, 2006")); err != nil {
			return err
		}
	}
	return nil
}
