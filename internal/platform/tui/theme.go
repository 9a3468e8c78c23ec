package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable visual styles for the quiz screen.
type Theme struct {
	// Card borders
	CardIdle     lipgloss.Style
	CardCursor   lipgloss.Style
	CardSelected lipgloss.Style
	CardCorrect  lipgloss.Style
	CardWrong    lipgloss.Style

	// Card contents
	Badge         lipgloss.Style
	BadgeSelected lipgloss.Style
	CardLabel     lipgloss.Style
	CardHint      lipgloss.Style
	VerdictAI     lipgloss.Style
	VerdictReal   lipgloss.Style

	// Header
	Title          lipgloss.Style
	LevelIndicator lipgloss.Style
	Instructions   lipgloss.Style

	// Results panel
	ResultCorrect lipgloss.Style
	ResultWrong   lipgloss.Style
	ResultHeading lipgloss.Style
	Explanation   lipgloss.Style

	// Footer
	Status lipgloss.Style
	Help   lipgloss.Style

	// Pack menu
	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuDetail     lipgloss.Style
}

const (
	colorBlue  = lipgloss.Color("#4a90e2")
	colorGreen = lipgloss.Color("#2ecc71")
	colorRed   = lipgloss.Color("#e74c3c")
	colorInk   = lipgloss.Color("#2c3e50")
)

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Theme{
		CardIdle:     card.BorderForeground(lipgloss.Color("240")),
		CardCursor:   card.BorderForeground(lipgloss.Color("252")),
		CardSelected: card.BorderForeground(colorBlue).Border(lipgloss.ThickBorder()),
		CardCorrect:  card.BorderForeground(colorGreen).Border(lipgloss.ThickBorder()),
		CardWrong:    card.BorderForeground(colorRed).Border(lipgloss.ThickBorder()),

		Badge:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1),
		BadgeSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(colorBlue).Bold(true).Padding(0, 1),
		CardLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		CardHint:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		VerdictAI:     lipgloss.NewStyle().Foreground(colorRed).Bold(true),
		VerdictReal:   lipgloss.NewStyle().Foreground(colorGreen).Bold(true),

		Title:          lipgloss.NewStyle().Foreground(colorBlue).Bold(true),
		LevelIndicator: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Instructions:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),

		ResultCorrect: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(colorGreen).PaddingLeft(1),
		ResultWrong:   lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(colorRed).PaddingLeft(1),
		ResultHeading: lipgloss.NewStyle().Bold(true),
		Explanation:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuTitle:      lipgloss.NewStyle().Foreground(colorBlue).Bold(true),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(colorInk).Bold(true),
		MenuDetail:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a theme that relies on border weight only.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	card := lipgloss.NewStyle().Padding(0, 1)
	theme.CardSelected = card.Border(lipgloss.ThickBorder())
	theme.CardCorrect = card.Border(lipgloss.DoubleBorder())
	theme.CardWrong = card.Border(lipgloss.BlockBorder())
	theme.VerdictAI = lipgloss.NewStyle().Bold(true)
	theme.VerdictReal = lipgloss.NewStyle().Bold(true)
	return theme
}

// ThemeByName returns a named theme and whether the name was known.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme(), true
	case "mono", "monochrome":
		return MonochromeTheme(), true
	default:
		return DefaultTheme(), false
	}
}
