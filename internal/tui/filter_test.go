package tui

import (
	"testing"

	"github.com/MKhiriev/smoke-stack/models"
	"github.com/stretchr/testify/assert"
)

func catalogFixture() []models.Strain {
	return []models.Strain{
		{InternalID: "a1", AliasID: "1", Name: "Blue Dream", Type: "Hybrid", Source: "Dispensary", Setting: "Beach at sunset"},
		{InternalID: "a2", AliasID: "2", Name: "Sour Diesel", Type: "Sativa", Source: "Friend", Setting: "Concert"},
		{InternalID: "a3", AliasID: "3", Name: "Northern Lights", Type: "Indica", Source: "Grow shop", Setting: "Couch"},
		{AliasID: "1700000000000", Name: "Mystery", Type: "", Source: "", Format: "Edible"},
	}
}

func names(strains []models.Strain) []string {
	out := make([]string, 0, len(strains))
	for _, s := range strains {
		out = append(out, s.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns everything", query: "", want: []string{"Blue Dream", "Sour Diesel", "Northern Lights", "Mystery"}},
		{name: "whitespace query returns everything", query: "   ", want: []string{"Blue Dream", "Sour Diesel", "Northern Lights", "Mystery"}},
		{name: "matches name ignoring case", query: "BLUE", want: []string{"Blue Dream"}},
		{name: "matches type", query: "indica", want: []string{"Northern Lights"}},
		{name: "matches source", query: "friend", want: []string{"Sour Diesel"}},
		{name: "matches setting", query: "couch", want: []string{"Northern Lights"}},
		{name: "query is trimmed", query: "  diesel ", want: []string{"Sour Diesel"}},
		{name: "substring spans several records", query: "n", want: []string{"Blue Dream", "Sour Diesel", "Northern Lights"}},
		{name: "format is not searched", query: "edible", want: []string{}},
		{name: "no match", query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(catalogFixture(), tt.query)))
		})
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	strains := catalogFixture()
	before := names(strains)

	_ = Filter(strains, "sativa")

	assert.Equal(t, before, names(strains))
}

func TestFilter_NilCollection(t *testing.T) {
	assert.Empty(t, Filter(nil, "blue"))
	assert.Empty(t, Filter(nil, ""))
}
