package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/pders01/pagesnap/internal/config"
)

const AppName = "pagesnap"

var LogoLines = []string{
	"█▀█ ▄▀█ █▀▀ █▀▀ █▀ █▄░█ ▄▀█ █▀█",
	"█▀▀ █▀█ █▄█ ██▄ ▄█ █░▀█ █▀█ █▀▀",
}

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#FF6B6B"),
	lipgloss.Color("#FFA86B"),
	lipgloss.Color("#95E1D3"),
	lipgloss.Color("#4ECDC4"),
}

// Theme holds every style the site surface draws with. It is built once per
// config so user colors apply everywhere.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Surface   lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color

	Logo        lipgloss.Style
	NavTitle    lipgloss.Style
	NavToggle   lipgloss.Style
	DotActive   lipgloss.Style
	DotIdle     lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	Popup       lipgloss.Style
	PopupButton lipgloss.Style
	Modal       lipgloss.Style
	ModalTitle  lipgloss.Style
	Video       lipgloss.Style
	Hint        lipgloss.Style
	Help        lipgloss.Style
	Separator   lipgloss.Style

	StatusInfo    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusWarn    lipgloss.Style
	StatusError   lipgloss.Style
}

func NewTheme(c config.UIColors) Theme {
	t := Theme{
		Primary:   lipgloss.Color(c.Primary),
		Secondary: lipgloss.Color(c.Secondary),
		Accent:    lipgloss.Color(c.Accent),
		Surface:   lipgloss.Color(c.Surface),
		Text:      lipgloss.Color(c.Text),
		Muted:     lipgloss.Color(c.Muted),
		Error:     lipgloss.Color(c.Error),
	}

	t.Logo = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.NavTitle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.NavToggle = lipgloss.NewStyle().
		Foreground(t.Surface).
		Background(t.Accent).
		Bold(true)

	t.DotActive = lipgloss.NewStyle().
		Foreground(t.Secondary).
		Bold(true)

	t.DotIdle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		Padding(0, 1)

	t.CardTitle = lipgloss.NewStyle().
		Foreground(t.Secondary).
		Bold(true)

	t.Popup = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Foreground(t.Text).
		Padding(0, 1)

	t.PopupButton = lipgloss.NewStyle().
		Foreground(t.Surface).
		Background(t.Primary).
		Bold(true).
		Padding(0, 1)

	t.Modal = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Foreground(t.Text).
		Padding(0, 1)

	t.ModalTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.Video = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(t.Accent).
		Foreground(t.Text).
		Padding(0, 1)

	t.Hint = lipgloss.NewStyle().
		Foreground(t.Accent).
		Italic(true)

	t.Help = lipgloss.NewStyle().
		Foreground(t.Muted).
		Italic(true)

	t.Separator = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.StatusInfo = lipgloss.NewStyle().Foreground(t.Muted)
	t.StatusSuccess = lipgloss.NewStyle().Foreground(t.Secondary)
	t.StatusWarn = lipgloss.NewStyle().Foreground(t.Accent)
	t.StatusError = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	return t
}

// StatusStyle picks the style for a status severity.
func (t Theme) StatusStyle(kind StatusKind) lipgloss.Style {
	switch kind {
	case StatusSuccess:
		return t.StatusSuccess
	case StatusWarn:
		return t.StatusWarn
	case StatusError:
		return t.StatusError
	default:
		return t.StatusInfo
	}
}

// RenderBanner builds the startup banner shown before the program starts.
func RenderBanner(version string) string {
	lines := make([]string, len(LogoLines)+1)
	copy(lines, LogoLines)

	versionTag := version
	if versionTag != "" && versionTag != "dev" {
		if versionTag[0] != 'v' && versionTag[0] != 'V' {
			versionTag = "v" + versionTag
		}
		lines = append(lines, fmt.Sprintf("scroll-snapped sites in the terminal %s", versionTag))
	} else {
		lines = append(lines, "scroll-snapped sites in the terminal")
	}

	var coloredLines []string
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}
		style := lipgloss.NewStyle().
			Foreground(BannerColors[i%len(BannerColors)]).
			Bold(i < len(LogoLines))
		coloredLines = append(coloredLines, style.Render(line))
	}

	borderChars := lipgloss.Border{
		Top:         "═",
		Bottom:      "═",
		Left:        "║",
		Right:       "║",
		TopLeft:     "╔",
		TopRight:    "╗",
		BottomLeft:  "╚",
		BottomRight: "╝",
	}

	output := lipgloss.NewStyle().
		Border(borderChars).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		Padding(1, 3).
		MarginTop(1).
		Render(lipgloss.JoinVertical(lipgloss.Center, coloredLines...))

	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#95E1D3")).
		Render("● ○ ○ ○")

	return lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.NewStyle().Width(70).Align(lipgloss.Center).Render(output),
		lipgloss.NewStyle().Width(70).Align(lipgloss.Center).MarginBottom(1).Render(separator),
	)
}

func ShowBanner(version string) {
	fmt.Println(RenderBanner(version))
}
