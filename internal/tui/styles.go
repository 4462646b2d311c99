package tui

import (
	"github.com/MKhiriev/smoke-stack/models"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	accent lipgloss.Color
	border lipgloss.Color
	danger lipgloss.Color
	online lipgloss.Color

	sativa lipgloss.Color
	indica lipgloss.Color
	hybrid lipgloss.Color
}

var (
	darkPalette = palette{
		text:   lipgloss.Color("#E8E6E3"),
		muted:  lipgloss.Color("#8A8F98"),
		accent: lipgloss.Color("#7BC67E"),
		border: lipgloss.Color("#3C4048"),
		danger: lipgloss.Color("#FF6B6B"),
		online: lipgloss.Color("#7BC67E"),
		sativa: lipgloss.Color("#F5A623"),
		indica: lipgloss.Color("#9B7BD4"),
		hybrid: lipgloss.Color("#4FB3BF"),
	}
	lightPalette = palette{
		text:   lipgloss.Color("#1F2328"),
		muted:  lipgloss.Color("#656D76"),
		accent: lipgloss.Color("#2E7D32"),
		border: lipgloss.Color("#D0D7DE"),
		danger: lipgloss.Color("#C62828"),
		online: lipgloss.Color("#2E7D32"),
		sativa: lipgloss.Color("#B26A00"),
		indica: lipgloss.Color("#6A4BA0"),
		hybrid: lipgloss.Color("#00796B"),
	}
)

type styles struct {
	app       lipgloss.Style
	title     lipgloss.Style
	help      lipgloss.Style
	muted     lipgloss.Style
	err       lipgloss.Style
	label     lipgloss.Style
	selected  lipgloss.Style
	navActive lipgloss.Style
	navIdle   lipgloss.Style
	online    lipgloss.Style
	offline   lipgloss.Style
	overlay   lipgloss.Style

	card         lipgloss.Style
	cardSelected lipgloss.Style

	badges map[Badge]lipgloss.Style
}

func newStyles(theme models.Theme) styles {
	p := darkPalette
	if theme == models.ThemeLight {
		p = lightPalette
	}

	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	card := lipgloss.NewStyle().
		Width(gridCardWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1)

	return styles{
		app:       lipgloss.NewStyle().Padding(1, 2).Foreground(p.text),
		title:     lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		help:      lipgloss.NewStyle().Faint(true),
		muted:     lipgloss.NewStyle().Foreground(p.muted),
		err:       lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		label:     lipgloss.NewStyle().Bold(true).Width(13),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		navActive: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(p.accent).Padding(0, 1),
		navIdle:   lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		online:    lipgloss.NewStyle().Foreground(p.online),
		offline:   lipgloss.NewStyle().Foreground(p.danger),
		overlay:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(1, 2),

		card:         card,
		cardSelected: card.BorderForeground(p.accent),

		badges: map[Badge]lipgloss.Style{
			BadgeSativa: badge.Foreground(p.sativa),
			BadgeIndica: badge.Foreground(p.indica),
			BadgeHybrid: badge.Foreground(p.hybrid),
		},
	}
}

func (s styles) badge(strainType string) string {
	return s.badges[BadgeFor(strainType)].Render(badgeLabel(strainType))
}
