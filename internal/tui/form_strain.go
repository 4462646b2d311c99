// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/smoke-stack/internal/app"
	"github.com/MKhiriev/smoke-stack/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldType
	fieldSource
	fieldImage
	fieldSetting
	fieldFormat
	fieldStoner
	fieldImpressions
	fieldOther
	fieldCount
)

var strainFieldLabels = [fieldCount]string{
	"Name *",
	"Type *",
	"Source",
	"Image URL",
	"Setting",
	"Format",
	"Stoner",
	"Impressions",
	"Other",
}

// strainFormModel edits every mutable field of a strain. key is empty when
// adding.
type strainFormModel struct {
	key        string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newStrainFormModel() strainFormModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.CharLimit = 2000
		in.Width = 50
		inputs[i] = in
	}
	inputs[fieldName].CharLimit = 120
	inputs[fieldType].CharLimit = 40
	inputs[fieldType].Placeholder = "sativa / indica / hybrid"
	inputs[fieldImage].Placeholder = "https://... (blank for default)"
	inputs[fieldName].Focus()

	return strainFormModel{inputs: inputs}
}

// newEditStrainFormModel prefills the form from an existing record.
func newEditStrainFormModel(strain models.Strain) strainFormModel {
	m := newStrainFormModel()
	m.key = strain.Key()

	in := models.InputFromStrain(strain)
	values := [fieldCount]string{
		in.Name,
		in.Type,
		in.Source,
		in.Image,
		in.Setting,
		in.Format,
		in.Stoner,
		in.Impressions,
		in.Other,
	}
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}
	return m
}

func (m strainFormModel) editing() bool {
	return m.key != ""
}

// input collects the form values. Name and type are trimmed.
func (m strainFormModel) input() models.StrainInput {
	return models.StrainInput{
		Name:        strings.TrimSpace(m.inputs[fieldName].Value()),
		Type:        strings.TrimSpace(m.inputs[fieldType].Value()),
		Source:      m.inputs[fieldSource].Value(),
		Image:       strings.TrimSpace(m.inputs[fieldImage].Value()),
		Setting:     m.inputs[fieldSetting].Value(),
		Format:      m.inputs[fieldFormat].Value(),
		Stoner:      m.inputs[fieldStoner].Value(),
		Impressions: m.inputs[fieldImpressions].Value(),
		Other:       m.inputs[fieldOther].Value(),
	}
}

// Update handles focus movement and typing. submit is true when the user
// asked to save and the required fields are filled.
func (m strainFormModel) Update(msg tea.Msg) (strainFormModel, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil, false
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil, false
		case "enter", "ctrl+s":
			if keyMsg.String() == "enter" && m.focus < fieldCount-1 {
				m.setFocus(m.focus + 1)
				return m, nil, false
			}
			if m.submitting {
				return m, nil, false
			}
			in := m.input()
			if in.Name == "" || in.Type == "" {
				m.errMsg = app.MsgNameAndTypeRequired
				return m, nil, false
			}
			m.errMsg = ""
			m.submitting = true
			return m, nil, true
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, false
}

func (m *strainFormModel) setFocus(i int) {
	if i < 0 {
		i = fieldCount - 1
	}
	if i >= fieldCount {
		i = 0
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m strainFormModel) View(st styles) string {
	var b strings.Builder
	for i, in := range m.inputs {
		label := st.label.Render(strainFieldLabels[i])
		if i == m.focus {
			label = st.selected.Render("› ") + label
		} else {
			label = "  " + label
		}
		b.WriteString(label)
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	switch {
	case m.submitting:
		b.WriteString("\n[Saving...]\n")
	default:
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(st.err.Render(m.errMsg))
		b.WriteString("\n")
	}

	title := "ADD STRAIN"
	if m.editing() {
		title = "EDIT STRAIN"
	}
	return renderPage(st.title.Render(title), strings.TrimRight(b.String(), "\n"),
		"esc: cancel │ tab/↑↓: field │ enter: next │ ctrl+s: save")
}
