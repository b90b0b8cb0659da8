// Package progressui provides the Bubble Tea progress and history interface.
package progressui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vidyajay1/Lumora/internal/model"
	statsPkg "github.com/vidyajay1/Lumora/internal/stats"
	"github.com/vidyajay1/Lumora/internal/userdata"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the progress history UI.
type Model struct {
	summary statsPkg.Summary
	history []model.Challenge
	table   table.Model

	width  int
	height int
}

// NewModel constructs a progress UI model over the persisted history.
func NewModel(data *userdata.Store, summary statsPkg.Summary) *Model {
	ctx := context.Background()
	history, err := data.LoadHistory(ctx)
	if err != nil {
		history = nil
	}
	m := &Model{summary: summary, history: history}
	m.table = buildHistoryTable(history, 80, 14)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = buildHistoryTable(m.history, msg.Width, maxInt(5, msg.Height-6))
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Lumora · Progress"))
	b.WriteString("\n")
	b.WriteString(statStyle.Render(fmt.Sprintf(
		"Streak %d · Completed %d · Success %.0f%%",
		m.summary.CurrentStreak, m.summary.TotalChallenges, m.summary.SuccessRate*100)))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓: scroll · q: quit"))
	return b.String()
}

func buildHistoryTable(history []model.Challenge, width, height int) table.Model {
	titleWidth := maxInt(20, width-34)
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Title", Width: titleWidth},
		{Title: "Category", Width: 12},
		{Title: "Done", Width: 4},
	}
	rows := make([]table.Row, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		ch := history[i]
		done := ""
		if ch.Completed {
			done = "yes"
		}
		rows = append(rows, table.Row{
			ch.CreatedAt.Format("2006-01-02"),
			statsPkg.Truncate(ch.Title, titleWidth),
			ch.Category,
			done,
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height-1)),
		table.WithFocused(true),
	)
	t.SetWidth(width)
	t.SetStyles(historyTableStyles())
	return t
}

func historyTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#3A3A3A"))
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
