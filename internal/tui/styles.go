package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite   = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim     = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed     = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow  = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan    = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
	colorMagenta = lipgloss.AdaptiveColor{Light: "90", Dark: "213"}
	colorBlue    = lipgloss.AdaptiveColor{Light: "26", Dark: "75"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	focusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorWhite)

	unfocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)
)

// Tab styles.
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Tool-call status styles.
var (
	callQueuedStyle  = lipgloss.NewStyle().Foreground(colorDim)
	callRunningStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	callSuccessStyle = lipgloss.NewStyle().Foreground(colorGreen)
	callFailedStyle  = lipgloss.NewStyle().Foreground(colorRed)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	listTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	progressStyle = lipgloss.NewStyle().Foreground(colorBlue)
)

// Log type styles.
var (
	logInfoStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	logToolStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	logErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
	logDebugStyle = lipgloss.NewStyle().Foreground(colorMagenta)
)

// Filter bar styles.
var (
	filterOnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	filterOffStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Strikethrough(true)

	searchLabelStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Detail panel styles.
var (
	detailHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	badgeDurationStyle = lipgloss.NewStyle().Foreground(colorDim)

	contentTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorCyan)

	placeholderStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(colorDim)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)
)

func logTypeStyle(t string) lipgloss.Style {
	switch t {
	case "INFO":
		return logInfoStyle
	case "TOOL":
		return logToolStyle
	case "ERROR":
		return logErrorStyle
	case "DEBUG":
		return logDebugStyle
	}
	return lipgloss.NewStyle().Foreground(colorWhite)
}
