package progressui

import (
	"testing"
	"time"

	"github.com/vidyajay1/Lumora/internal/model"
)

func TestBuildHistoryTableNewestFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	history := []model.Challenge{
		{Title: "old", CreatedAt: base},
		{Title: "new", CreatedAt: base.AddDate(0, 0, 1), Completed: true},
	}
	tbl := buildHistoryTable(history, 80, 10)
	rows := tbl.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "new" || rows[0][3] != "yes" {
		t.Fatalf("expected newest completed row first, got %v", rows[0])
	}
	if rows[1][1] != "old" || rows[1][3] != "" {
		t.Fatalf("unexpected second row: %v", rows[1])
	}
}
