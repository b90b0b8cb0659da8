package tui

import (
	"strings"
	"testing"

	"github.com/vidyajay1/Lumora/internal/model"
)

func TestRenderRow(t *testing.T) {
	ch := model.Challenge{Title: "💚 Drink a glass of...", Completed: false}
	row := renderRow(ch, false, 80)
	if !strings.Contains(row, "[ ]") {
		t.Fatalf("expected empty checkbox, got %q", row)
	}
	ch.Completed = true
	row = renderRow(ch, false, 80)
	if !strings.Contains(row, "[x]") {
		t.Fatalf("expected checked box, got %q", row)
	}
	row = renderRow(ch, true, 80)
	if !strings.Contains(row, "> ") {
		t.Fatalf("expected cursor marker, got %q", row)
	}
}
