package tui

import "github.com/MKhiriev/smoke-stack/internal/app"

type confirmModel struct {
	name string
	key  string
}

func (m confirmModel) View(st styles) string {
	content := "\"" + m.name + "\"\n\n"
	content += app.MsgConfirmDeleteStrain + "\n\n"
	content += "y yes    n no"
	return st.overlay.Render(content)
}
