package tui

import "github.com/charmbracelet/lipgloss"

// Rose palette.
var (
	rose       = lipgloss.Color("#FFE4E1")
	paleViolet = lipgloss.Color("#DB7093")
	hotPink    = lipgloss.Color("#FF69B4")
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(paleViolet)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(hotPink).MarginBottom(1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(paleViolet).
			Padding(0, 1)
	blurredInputStyle = inputStyle.BorderForeground(lipgloss.Color("240"))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(hotPink).
			Padding(0, 2).
			MarginBottom(1)

	taskStyle         = lipgloss.NewStyle().Foreground(paleViolet)
	selectedTaskStyle = lipgloss.NewStyle().Bold(true).Foreground(hotPink).Background(rose)
	editingTaskStyle  = selectedTaskStyle.Underline(true)
	actionStyle       = lipgloss.NewStyle().Bold(true).Foreground(hotPink)
	emptyStyle        = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().MarginTop(1)
)
