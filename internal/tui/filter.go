package tui

import (
	"strings"

	"github.com/MKhiriev/smoke-stack/models"
)

// Filter returns the records whose name, type, source or setting contains
// query, ignoring case. The query is trimmed first; an empty query matches
// everything. The input slice is never modified.
func Filter(strains []models.Strain, query string) []models.Strain {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return strains
	}

	matched := make([]models.Strain, 0, len(strains))
	for _, s := range strains {
		if matches(s, query) {
			matched = append(matched, s)
		}
	}
	return matched
}

func matches(s models.Strain, query string) bool {
	for _, field := range []string{s.Name, s.Type, s.Source, s.Setting} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
