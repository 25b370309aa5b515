package tui

import "github.com/charmbracelet/lipgloss"

var (
	purpleLight = lipgloss.Color("#e0b0ff")
	purpleMid   = lipgloss.Color("#b19cd9")
	purpleDark  = lipgloss.Color("#7b2cbf")
	redCard     = lipgloss.Color("#dc2626")
	green       = lipgloss.Color("#10b981")
	gold        = lipgloss.Color("#fbbf24")

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(purpleLight)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(purpleMid).
			Faint(true)

	styleQuestion = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purpleDark).
			Padding(0, 1)

	styleLabel = lipgloss.NewStyle().
			Foreground(purpleMid).
			Bold(true)

	stylePile = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purpleDark).
			Width(cellWidth).
			Align(lipgloss.Center)

	// destination of the selected card
	stylePileTarget = stylePile.Copy().
			BorderForeground(green)

	stylePileCursor = stylePile.Copy().
			Border(lipgloss.ThickBorder()).
			BorderForeground(gold)

	styleCardBack = lipgloss.NewStyle().
			Foreground(purpleDark)

	styleCardRed = lipgloss.NewStyle().
			Foreground(redCard).
			Bold(true)

	styleCardBlack = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)

	styleCardSelected = lipgloss.NewStyle().
				Background(gold).
				Foreground(lipgloss.Color("0")).
				Bold(true)

	styleYes = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	styleNo = lipgloss.NewStyle().
			Foreground(redCard).
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(redCard)

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
