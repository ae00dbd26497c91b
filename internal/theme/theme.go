package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// Apply switches the adaptive palette to the stored preference instead of
// the terminal's detected background.
func Apply(t model.Theme) {
	lipgloss.SetHasDarkBackground(t != model.ThemeLight)
}

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// DetailPanelStyle wraps the detail view content area.
var DetailPanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// CompletedItemStyle dims finished tasks.
var CompletedItemStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Strikethrough(true)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// BorderStyle provides a standard rounded border for panels.
var BorderStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// TabStyle renders an inactive entry of the screen switcher.
var TabStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Padding(0, 1)

// ActiveTabStyle renders the current screen in the switcher.
var ActiveTabStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorBlue).
	Underline(true).
	Padding(0, 1)

// XPStyle highlights experience amounts.
var XPStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorMagenta)

// LevelStyle renders the level badge.
var LevelStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorMagenta).
	Padding(0, 1)

// StreakStyle renders the day streak counter.
var StreakStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorOrange)

// Notice styles, one per notice kind.
var (
	InfoStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(ColorBlue)
	SuccessStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(ColorGreen)
	RewardStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(ColorMagenta)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(ColorRed)
)

// PriorityStyle returns a color-coded style for the given task priority.
func PriorityStyle(p model.Priority) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch p {
	case model.PriorityHigh:
		return base.Foreground(ColorRed)
	case model.PriorityMedium:
		return base.Foreground(ColorYellow)
	case model.PriorityLow:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// ProximityStyle colors a deadline by how close it is.
func ProximityStyle(p clock.Proximity) lipgloss.Style {
	base := lipgloss.NewStyle()

	switch p {
	case clock.Overdue:
		return base.Bold(true).Foreground(ColorRed)
	case clock.DueToday:
		return base.Bold(true).Foreground(ColorOrange)
	case clock.DueTomorrow:
		return base.Foreground(ColorYellow)
	case clock.DueThisWeek:
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}

// ModeStyle colors the focus timer by mode.
func ModeStyle(m model.TimerMode) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch m {
	case model.ModeWork:
		return base.Foreground(ColorRed)
	case model.ModeShortBreak:
		return base.Foreground(ColorGreen)
	case model.ModeLongBreak:
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}
