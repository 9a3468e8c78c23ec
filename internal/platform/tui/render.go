package tui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/real-or-ai/internal/quiz"
)

// Card layout constants
const (
	minCardWidth = 18
	maxCardWidth = 36
	cardGap      = 1
)

const instructions = "Look for inconsistencies in lighting and details"

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.session.Phase() == quiz.PhaseGameOver {
		return m.renderGameOver()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	switch m.session.Phase() {
	case quiz.PhaseSelecting:
		if m.showInstructions {
			b.WriteString(m.theme.Instructions.Render(instructions))
			b.WriteString("\n")
		}
	case quiz.PhaseChecking:
		b.WriteString(m.renderResults())
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader draws the catalog title, level indicator and progress bar.
func (m Model) renderHeader() string {
	st := m.session.State()
	lvl := m.session.CurrentLevel()

	title := m.theme.Title.Render(fmt.Sprintf("%s: %s", m.session.Catalog().Title(), lvl.Title()))
	indicator := m.theme.LevelIndicator.Render(fmt.Sprintf("Level %d of %d", st.LevelIndex+1, st.LevelCount))
	if r := m.session.Round(); r > 0 {
		indicator += m.theme.LevelIndicator.Render(fmt.Sprintf("  (round %d)", r+1))
	}

	percent := float64(st.LevelIndex+1) / float64(st.LevelCount)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		indicator,
		m.progress.ViewAs(percent),
	)
}

// renderGrid lays the cards out in rows of Layout.Columns().
func (m Model) renderGrid() string {
	tiles := m.session.RenderModel()
	cols := m.session.CurrentLevel().Layout().Columns()
	width := m.cardContentWidth(cols)

	var rows []string
	for start := 0; start < len(tiles); start += cols {
		end := min(start+cols, len(tiles))
		cards := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, m.renderCard(tiles[i], width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard draws one image card.
func (m Model) renderCard(t quiz.Tile, width int) string {
	badge := m.theme.Badge
	if t.IsSelected {
		badge = m.theme.BadgeSelected
	}
	pointer := "  "
	if t.Index == m.cursor && m.session.Phase() == quiz.PhaseSelecting {
		pointer = "> "
	}

	label := truncate(path.Base(t.Image.Src), width-8)
	lines := []string{
		pointer + badge.Render(fmt.Sprintf("%d", t.Index+1)) + " " + m.theme.CardLabel.Render(label),
	}

	switch {
	case t.ShowFeedback:
		lines = append(lines, m.verdict(t))
	case t.ShowHint:
		lines = append(lines, m.theme.CardHint.Render(truncate(t.Image.Hint, width)))
	default:
		lines = append(lines, "")
	}

	return m.cardStyle(t).Width(width).Render(strings.Join(lines, "\n"))
}

// verdict is the checked-state line of a card.
func (m Model) verdict(t quiz.Tile) string {
	mark := "✓"
	if !t.IsCorrect {
		mark = "✗"
	}
	if t.Image.IsAI {
		return m.theme.VerdictAI.Render("AI " + mark)
	}
	return m.theme.VerdictReal.Render("Real " + mark)
}

// cardStyle picks the border for a tile: feedback colours while checking,
// blue when selected.
func (m Model) cardStyle(t quiz.Tile) lipgloss.Style {
	switch {
	case t.ShowFeedback && t.IsCorrect:
		return m.theme.CardCorrect
	case t.ShowFeedback:
		return m.theme.CardWrong
	case t.IsSelected:
		return m.theme.CardSelected
	case t.Index == m.cursor && m.session.Phase() == quiz.PhaseSelecting:
		return m.theme.CardCursor
	default:
		return m.theme.CardIdle
	}
}

// cardContentWidth fits cols cards into the screen width.
func (m Model) cardContentWidth(cols int) int {
	if m.cardWidth > 0 {
		return m.cardWidth
	}
	// Border and padding take 4 columns per card.
	w := (m.config.ScreenW-(cols-1)*cardGap)/cols - 4
	return max(minCardWidth, min(maxCardWidth, w))
}

// renderResults lists every image with its ground truth and explanation.
func (m Model) renderResults() string {
	var b strings.Builder
	if m.session.LevelCorrect() {
		b.WriteString(m.theme.VerdictReal.Render("All correct!"))
	} else {
		b.WriteString(m.theme.VerdictAI.Render("Not quite."))
	}
	b.WriteString("\n")

	for _, t := range m.session.RenderModel() {
		kind := "Real Image"
		if t.Image.IsAI {
			kind = "AI Generated"
		}
		style := m.theme.ResultCorrect
		if !t.IsCorrect {
			style = m.theme.ResultWrong
		}
		body := m.theme.ResultHeading.Render(fmt.Sprintf("Image %d: %s", t.Index+1, kind)) +
			"\n" + m.theme.Explanation.Render(t.Image.Explanation)
		b.WriteString(style.Render(body))
		b.WriteString("\n")
	}

	if m.session.IsLastLevel() && m.session.Options().EndPolicy == quiz.EndGameOver {
		b.WriteString(m.theme.LevelIndicator.Render("Last level: press n to see your results"))
		b.WriteString("\n")
	}
	return b.String()
}

// renderFooter draws the status line and key help.
func (m Model) renderFooter() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(m.theme.Status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// truncate shortens s to at most n runes, marking the cut with "…".
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
