// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/smoke-stack/internal/service"
	"github.com/MKhiriev/smoke-stack/models"
)

// ViewMode selects which catalog view is rendered. Exactly one is active.
type ViewMode int

const (
	ModeList ViewMode = iota
	ModeGrid
	ModeDetail
)

func (m ViewMode) String() string {
	switch m {
	case ModeList:
		return "list"
	case ModeGrid:
		return "grid"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

const (
	gridCardWidth = 26
	gridGap       = 2
	defaultWidth  = 80
)

// State is everything the catalog renderers need. It is a plain value: the
// root model owns one and passes copies into the render functions.
type State struct {
	Strains []models.Strain
	Query   string

	// Searching is true while the search input has focus.
	Searching bool

	Mode ViewMode

	// Collection is the list or grid mode that detail returns to and that
	// the nav bar marks.
	Collection ViewMode

	// Cursor indexes the filtered collection.
	Cursor int

	// CurrentKey is the key of the record shown in detail mode.
	CurrentKey string

	Loading bool
	Online  bool
	Probed  bool
	Source  service.DataSource

	Theme   models.Theme
	Session *models.Session

	Status string

	Width  int
	Height int
}

// Visible returns the records that match the current query.
func (s State) Visible() []models.Strain {
	return Filter(s.Strains, s.Query)
}

// Selected returns the record under the cursor.
func (s State) Selected() (models.Strain, bool) {
	visible := s.Visible()
	if s.Cursor < 0 || s.Cursor >= len(visible) {
		return models.Strain{}, false
	}
	return visible[s.Cursor], true
}

// Current returns the record shown in detail mode. It is looked up in the
// full collection so a search typed afterwards cannot hide it.
func (s State) Current() (models.Strain, bool) {
	if s.CurrentKey == "" {
		return models.Strain{}, false
	}
	for _, strain := range s.Strains {
		if strain.Key() == s.CurrentKey {
			return strain, true
		}
	}
	return models.Strain{}, false
}

// GridColumns is the number of cards per grid row for the current width.
func (s State) GridColumns() int {
	width := s.Width
	if width <= 0 {
		width = defaultWidth
	}
	cols := (width - 4) / (gridCardWidth + gridGap)
	if cols < 1 {
		return 1
	}
	return cols
}

// MoveCursor shifts the cursor by delta and clamps it to the filtered
// collection.
func (s State) MoveCursor(delta int) State {
	s.Cursor += delta
	return s.ClampCursor()
}

func (s State) ClampCursor() State {
	n := len(s.Visible())
	if s.Cursor >= n {
		s.Cursor = n - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	return s
}

// SwitchTo activates list or grid mode and leaves detail.
func (s State) SwitchTo(mode ViewMode) State {
	if mode == ModeDetail {
		return s
	}
	s.Mode = mode
	s.Collection = mode
	s.CurrentKey = ""
	return s
}

// OpenDetail shows the record under the cursor.
func (s State) OpenDetail() State {
	selected, ok := s.Selected()
	if !ok {
		return s
	}
	s.Mode = ModeDetail
	s.CurrentKey = selected.Key()
	return s
}

// CloseDetail goes back to the collection mode detail was opened from.
func (s State) CloseDetail() State {
	return s.SwitchTo(s.Collection)
}

// WithQuery sets the search query and resets the cursor to the first match.
func (s State) WithQuery(query string) State {
	s.Query = query
	s.Cursor = 0
	return s
}

// WithSnapshot replaces the collection with the outcome of a data operation.
func (s State) WithSnapshot(snap service.Snapshot) State {
	s.Strains = snap.Strains
	s.Online = snap.Online
	if s.Mode == ModeDetail {
		if _, ok := s.Current(); !ok {
			s = s.SwitchTo(ModeList)
		}
	}
	return s.ClampCursor()
}
