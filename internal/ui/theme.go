package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kittyhaven/internal/catalog"
	"kittyhaven/internal/pet"
)

// kittyhaven theme (CLI + TUI).

const (
	IconCat      = "🐱"
	IconSparkle  = "✨"
	IconCoin     = "🪙"
	IconHeart    = "💗"
	IconFood     = "🍗"
	IconBolt     = "⚡"
	IconSleep    = "💤"
	IconToy      = "🧶"
	IconGift     = "🎁"
	IconBag      = "🎒"
	IconScroll   = "📜"
	IconCalendar = "📅"
	IconDone     = "✅"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconUndo     = "↩️"
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

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
	Button      = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Pressed     = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold)
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

func MoodText(m pet.Mood) string {
	switch m {
	case pet.MoodHappy:
		return Good.Render("happy")
	case pet.MoodSad:
		return Bad.Render("sad")
	case pet.MoodTired:
		return Warn.Render("tired")
	default:
		return Muted.Render(string(m))
	}
}

// MoodStyle colors a cat sprite by mood.
func MoodStyle(m pet.Mood) lipgloss.Style {
	switch m {
	case pet.MoodHappy:
		return Good
	case pet.MoodSad:
		return Bad
	case pet.MoodTired:
		return Warn
	default:
		return Gold
	}
}

func ItemIcon(t catalog.ItemType) string {
	switch t {
	case catalog.TypeFood:
		return IconFood
	case catalog.TypeToy:
		return IconToy
	default:
		return IconGift
	}
}

// Meter renders a vital as a fixed-width bar.
func Meter(value, max float64, width int) string {
	if width < 3 {
		width = 3
	}
	if max <= 0 {
		max = 1
	}
	ratio := value / max
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
