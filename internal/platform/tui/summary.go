package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/real-or-ai/internal/catalog"
	"github.com/vovakirdan/real-or-ai/internal/quiz"
)

// Summary table layout constants
const (
	colLevel   = 5
	colResult  = 8
	colMarked  = 12
	colAnswer  = 12
	colImages  = 7
	titleMin   = 12
	titleMax   = 28
	tableInset = 4 // Border and padding around the table
)

// NewSummaryTable builds the end-of-game results table.
func NewSummaryTable(results []quiz.LevelResult, width int) table.Model {
	fixed := colLevel + colResult + colMarked + colAnswer + colImages
	titleW := max(titleMin, min(titleMax, width-fixed-tableInset-12))

	columns := []table.Column{
		{Title: "#", Width: colLevel},
		{Title: "Level", Width: titleW},
		{Title: "Result", Width: colResult},
		{Title: "Marked", Width: colMarked},
		{Title: "AI images", Width: colAnswer},
		{Title: "Images", Width: colImages},
	}

	rows := make([]table.Row, len(results))
	for i, r := range results {
		result := "miss"
		if r.Perfect() {
			result = "correct"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.LevelIndex+1),
			r.Title,
			result,
			oneBased(r.Selected),
			oneBased(r.Correct),
			fmt.Sprintf("%d/%d", r.ImagesCorrect, r.ImagesTotal),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(min(len(rows)+2, 14)), // header plus its border line
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// oneBased formats a selection with the numbers shown on the cards.
func oneBased(sel catalog.Selection) string {
	idx := sel.Indices()
	if len(idx) == 0 {
		return "-"
	}
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = fmt.Sprintf("%d", v+1)
	}
	return strings.Join(parts, ",")
}

// renderGameOver renders the final summary.
func (m Model) renderGameOver() string {
	var b strings.Builder
	score := m.session.Score()

	b.WriteString(m.theme.Title.Render(fmt.Sprintf("%s: results", m.session.Catalog().Title())))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(1))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Levels correct: %d of %d\n", score.LevelsCorrect, score.LevelsPlayed))
	b.WriteString(fmt.Sprintf("Images judged correctly: %d of %d (%.0f%%)\n\n",
		score.ImagesCorrect, score.ImagesSeen, score.Accuracy()*100))

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(NewSummaryTable(m.session.Results(), m.config.ScreenW).View()))
	b.WriteString("\n")

	b.WriteString(m.theme.Help.Render("r: play again  •  q: quit"))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Status.Render(m.status))
	}
	return b.String()
}

// SummaryText renders a plain-text summary for printing after the program exits.
func SummaryText(s quiz.Session) string {
	score := s.Score()
	if score.LevelsPlayed == 0 {
		return "No levels finished."
	}

	var b strings.Builder
	for _, r := range s.Results() {
		mark := "✗"
		if r.Perfect() {
			mark = "✓"
		}
		fmt.Fprintf(&b, "  %s %-24s marked %-8s AI %s\n", mark, r.Title, oneBased(r.Selected), oneBased(r.Correct))
	}
	fmt.Fprintf(&b, "\n%d of %d levels correct, %.0f%% of images judged correctly.",
		score.LevelsCorrect, score.LevelsPlayed, score.Accuracy()*100)
	return b.String()
}
