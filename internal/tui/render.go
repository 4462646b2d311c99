package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/smoke-stack/internal/app"
	"github.com/MKhiriev/smoke-stack/models"
	"github.com/charmbracelet/lipgloss"
)

// chrome is the number of rows taken by everything around the catalog body.
const chrome = 14

// renderCatalog renders the whole catalog screen for s. It depends on
// nothing but its arguments.
func renderCatalog(s State, st styles) string {
	var body string
	switch s.Mode {
	case ModeGrid:
		body = renderGrid(s, st)
	case ModeDetail:
		body = renderDetail(s, st)
	default:
		body = renderList(s, st)
	}

	data := renderSearch(s, st) + "\n\n" + body + "\n\n" + renderStatusLine(s, st)
	return renderPage(renderNav(s, st), data, renderHelp(s))
}

// renderNav renders the title and the list/grid switch. The active control
// is bracketed; in detail mode it is the collection detail returns to.
func renderNav(s State, st styles) string {
	item := func(label string, mode ViewMode) string {
		if s.Collection == mode {
			return st.navActive.Render("[" + label + "]")
		}
		return st.navIdle.Render(" " + label + " ")
	}
	return st.title.Render("SmokeStack") + "  " + item("1 List", ModeList) + item("2 Grid", ModeGrid)
}

func renderSearch(s State, st styles) string {
	switch {
	case s.Searching:
		return "/ " + s.Query + "█"
	case s.Query != "":
		return "/ " + s.Query + st.muted.Render("   esc: clear")
	default:
		return st.muted.Render("/ search")
	}
}

func renderEmpty(s State, st styles) string {
	switch {
	case s.Loading && len(s.Strains) == 0:
		return st.muted.Render(app.MsgLoadingStrains)
	case len(s.Strains) == 0:
		return st.title.Render(app.MsgNoStrainsFound) + "\n" + st.muted.Render("Add your first strain to get started!")
	default:
		return st.title.Render(app.MsgNoStrainsFound) + "\n" + st.muted.Render(app.MsgNoStrainsMatchSearch)
	}
}

func bodyHeight(s State) int {
	if s.Height <= 0 {
		return 0
	}
	if h := s.Height - chrome; h > 3 {
		return h
	}
	return 3
}

func renderList(s State, st styles) string {
	visible := s.Visible()
	if len(visible) == 0 {
		return renderEmpty(s, st)
	}

	nameWidth := 32
	if s.Width > 0 && s.Width < 80 {
		nameWidth = 20
	}

	start, end := window(len(visible), s.Cursor, bodyHeight(s))
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		strain := visible[i]
		marker := "  "
		name := fitText(strain.Name, nameWidth)
		if i == s.Cursor {
			marker = st.selected.Render("› ")
			name = st.selected.Render(name)
		}
		line := marker + st.badge(strain.Type) + " " + name
		if strain.Source != "" {
			line += "  " + st.muted.Render(fitText(strain.Source, 30))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func renderGrid(s State, st styles) string {
	visible := s.Visible()
	if len(visible) == 0 {
		return renderEmpty(s, st)
	}

	cols := s.GridColumns()
	rows := (len(visible) + cols - 1) / cols

	// a card is four rows tall including its border
	height := bodyHeight(s) / 4
	if bodyHeight(s) > 0 && height < 1 {
		height = 1
	}
	start, end := window(rows, s.Cursor/cols, height)

	rendered := make([]string, 0, end-start)
	for row := start; row < end; row++ {
		cards := make([]string, 0, cols)
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(visible) {
				break
			}
			cards = append(cards, renderCard(visible[i], i == s.Cursor, st))
			if col < cols-1 {
				cards = append(cards, strings.Repeat(" ", gridGap))
			}
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rendered, "\n")
}

func renderCard(strain models.Strain, selected bool, st styles) string {
	// border and padding take four columns
	name := fitText(strain.Name, gridCardWidth-4)
	style := st.card
	if selected {
		style = st.cardSelected
		name = st.selected.Render(name)
	}
	return style.Render(name + "\n" + st.badge(strain.Type))
}

func renderDetail(s State, st styles) string {
	strain, ok := s.Current()
	if !ok {
		return st.err.Render(app.MsgStrainNotFound)
	}

	valueWidth := 0
	if s.Width > 0 {
		valueWidth = max(20, s.Width-st.label.GetWidth()-8)
	}
	value := lipgloss.NewStyle().Width(valueWidth)

	var b strings.Builder
	b.WriteString(st.title.Render(strain.Name))
	b.WriteString("  ")
	b.WriteString(st.badge(strain.Type))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Type", strain.Type},
		{"Setting", strain.Setting},
		{"Source", strain.Source},
		{"Format", strain.Format},
		{"Stoner", strain.Stoner},
		{"Impressions", strain.Impressions},
		{"Other", strain.Other},
		{"Image", strain.Image},
		{"ID", strain.AliasID},
		{"Internal ID", strain.InternalID},
		{"Created", formatTime(strain.CreatedAt)},
		{"Updated", formatTime(strain.UpdatedAt)},
	}
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, st.label.Render(row.label), value.Render(valueOrDash(row.value))))
	}
	return b.String()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(time.DateTime)
}

func renderStatusLine(s State, st styles) string {
	var conn string
	switch {
	case !s.Probed:
		conn = st.muted.Render("○ checking server")
	case s.Online:
		conn = st.online.Render("● online")
	default:
		conn = st.offline.Render("● offline") + st.muted.Render("  "+app.MsgOfflineNotice)
	}

	parts := []string{conn}
	if !s.Loading {
		parts = append(parts, st.muted.Render("data: "+s.Source.String()))
	}
	if s.Session != nil {
		parts = append(parts, st.muted.Render("signed in as "+s.Session.User.Email))
	} else {
		parts = append(parts, st.muted.Render("guest"))
	}

	line := strings.Join(parts, st.muted.Render("  │  "))
	if s.Status != "" {
		line += "\n" + st.selected.Render(s.Status)
	}
	return line
}

func renderHelp(s State) string {
	switch {
	case s.Searching:
		return "type to filter │ enter/esc: done"
	case s.Mode == ModeDetail:
		return "esc: back │ e: edit │ d: delete │ c: copy image url │ t: theme │ q: quit"
	case s.Mode == ModeGrid:
		return "←↑↓→: move │ enter: open │ /: search │ n: add │ 1: list │ a: account │ t: theme │ r: reload │ v: about │ q: quit"
	default:
		return "↑↓: move │ enter: open │ /: search │ n: add │ 2: grid │ a: account │ t: theme │ r: reload │ v: about │ q: quit"
	}
}
