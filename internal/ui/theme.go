package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Battle theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSword   = "⚔️"
	IconShield  = "🛡️"
	IconSkull   = "💀"
	IconSparkle = "✨"
	IconHeart   = "❤️"
	IconMana    = "🔮"
	IconGold    = "🪙"
	IconBag     = "🎒"
	IconScroll  = "📜"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconFlee    = "🏃"
	IconDice    = "🎲"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)

	BadgeLevelUp  = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgeCritical = lipgloss.NewStyle().Bold(true).Foreground(cWarn).Render("CRITICAL")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Bar renders a clamped gauge like "██████░░░░ 12/30" colored by fill.
func Bar(current, maximum, width int) string {
	if width <= 0 {
		width = 10
	}
	if maximum < 1 {
		maximum = 1
	}
	if current < 0 {
		current = 0
	}
	if current > maximum {
		current = maximum
	}

	filled := current * width / maximum
	if current > 0 && filled == 0 {
		filled = 1
	}
	gauge := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := Good
	switch {
	case current*100 <= maximum*25:
		style = Bad
	case current*100 <= maximum*50:
		style = Warn
	}
	return style.Render(gauge) + Muted.Render(fmt.Sprintf(" %d/%d", current, maximum))
}

// OutcomeText colors a chronicle outcome word.
func OutcomeText(outcome string) string {
	switch strings.ToLower(strings.TrimSpace(outcome)) {
	case "victory":
		return Good.Render("victory")
	case "defeat":
		return Bad.Render("defeat")
	case "fled":
		return Warn.Render("fled")
	default:
		return Muted.Render(outcome)
	}
}
