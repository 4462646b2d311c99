// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/smoke-stack/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, st styles) string {
	var b strings.Builder

	b.WriteString(st.label.Render("Application"))
	b.WriteString("SmokeStack\n")
	b.WriteString(st.label.Render("Version"))
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString(st.label.Render("Date"))
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString(st.label.Render("Commit"))
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage(st.title.Render("ABOUT"), b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
