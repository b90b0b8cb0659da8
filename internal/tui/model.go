// Package tui provides the Bubble Tea daily challenge interface.
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vidyajay1/Lumora/internal/challenge"
	"github.com/vidyajay1/Lumora/internal/model"
	"github.com/vidyajay1/Lumora/internal/progress"
	statsPkg "github.com/vidyajay1/Lumora/internal/stats"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#5AB463")).Strikethrough(true)
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	descStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E")).Italic(true)
)

// Model implements the Bubble Tea today view.
type Model struct {
	gen     *challenge.Generator
	tracker *progress.Tracker
	day     string

	challenges []model.Challenge
	summary    statsPkg.Summary
	cursor     int

	width  int
	height int
}

// NewModel constructs the today view, loading the day's batch up front.
func NewModel(gen *challenge.Generator, tracker *progress.Tracker, day string) *Model {
	m := &Model{gen: gen, tracker: tracker, day: day}
	ctx := context.Background()
	m.challenges = gen.TodaysChallenges(ctx)
	m.summary = tracker.Summary(ctx)
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
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeySpace || msg.Type == tea.KeyEnter {
			m.toggleSelected()
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.challenges)-1 {
				m.cursor++
			}
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

func (m *Model) toggleSelected() {
	if m.cursor < 0 || m.cursor >= len(m.challenges) {
		return
	}
	ctx := context.Background()
	ch := m.challenges[m.cursor]
	if !m.tracker.UpdateProgress(ctx, ch.ID, !ch.Completed) {
		return
	}
	m.challenges = m.gen.TodaysChallenges(ctx)
	m.summary = m.tracker.Summary(ctx)
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.challenges) == 0 {
		return "No challenges available. Press q to quit.\n"
	}
	contentWidth := m.width
	if contentWidth <= 0 {
		contentWidth = 80
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Lumora · %s", m.day)))
	b.WriteString("\n\n")
	for i, ch := range m.challenges {
		b.WriteString(renderRow(ch, i == m.cursor, contentWidth))
		b.WriteString("\n")
		if i == m.cursor {
			desc := statsPkg.Truncate(ch.Description, contentWidth-6)
			meta := fmt.Sprintf("%s · %s · ~%d min", ch.Category, ch.Difficulty, ch.EstimatedTime)
			b.WriteString("      " + descStyle.Render(desc) + "\n")
			b.WriteString("      " + badgeStyle.Render(meta) + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.renderFooter()))
	b.WriteString("\n")
	if m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, b.String())
	}
	return b.String()
}

func renderRow(ch model.Challenge, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = "> "
	}
	box := "[ ]"
	if ch.Completed {
		box = "[x]"
	}
	title := statsPkg.Truncate(ch.Title, width-8)
	line := fmt.Sprintf("%s%s %s", marker, box, title)
	switch {
	case ch.Completed:
		return doneStyle.Render(line)
	case selected:
		return selectedStyle.Render(line)
	default:
		return pendingStyle.Render(line)
	}
}

func (m *Model) renderFooter() string {
	segments := []string{
		fmt.Sprintf("Streak %d", m.summary.CurrentStreak),
		fmt.Sprintf("Completed %d", m.summary.TotalChallenges),
		fmt.Sprintf("Success %.0f%%", m.summary.SuccessRate*100),
		"space: toggle · q: quit",
	}
	return strings.Join(segments, "  ")
}
