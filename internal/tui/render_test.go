package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/smoke-stack/internal/app"
	"github.com/MKhiriev/smoke-stack/internal/service"
	"github.com/MKhiriev/smoke-stack/models"
	"github.com/stretchr/testify/assert"
)

func testState(mode ViewMode) State {
	collection := mode
	if mode == ModeDetail {
		collection = ModeList
	}
	return State{
		Strains:    catalogFixture(),
		Mode:       mode,
		Collection: collection,
		Theme:      models.ThemeDark,
		Source:     service.SourceServer,
	}
}

func TestRenderNav_MarksActiveCollection(t *testing.T) {
	st := newStyles(models.ThemeDark)

	list := renderNav(testState(ModeList), st)
	assert.Contains(t, list, "[1 List]")
	assert.NotContains(t, list, "[2 Grid]")

	grid := renderNav(testState(ModeGrid), st)
	assert.Contains(t, grid, "[2 Grid]")
	assert.NotContains(t, grid, "[1 List]")

	detail := testState(ModeGrid).OpenDetail()
	assert.Contains(t, renderNav(detail, st), "[2 Grid]")
}

func TestRenderCatalog_ModesAreExclusive(t *testing.T) {
	st := newStyles(models.ThemeDark)

	list := renderCatalog(testState(ModeList), st)
	assert.Contains(t, list, "Blue Dream")
	assert.Contains(t, list, "Dispensary")
	assert.NotContains(t, list, "Beach at sunset")

	grid := renderCatalog(testState(ModeGrid), st)
	assert.Contains(t, grid, "Blue Dream")
	assert.NotContains(t, grid, "Dispensary")
	assert.NotContains(t, grid, "Beach at sunset")

	detail := renderCatalog(testState(ModeList).OpenDetail(), st)
	assert.Contains(t, detail, "Beach at sunset")
	assert.NotContains(t, detail, "Sour Diesel")
}

func TestRenderList(t *testing.T) {
	st := newStyles(models.ThemeDark)
	s := testState(ModeList)
	s.Cursor = 1

	out := renderList(s, st)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "› "))
	assert.Contains(t, lines[1], "Sour Diesel")
	assert.Contains(t, lines[1], "Sativa")
	assert.True(t, strings.HasPrefix(lines[0], "  "))
	// blank type renders the hybrid label
	assert.Contains(t, lines[3], "hybrid")
}

func TestRenderList_AppliesFilter(t *testing.T) {
	st := newStyles(models.ThemeDark)
	s := testState(ModeList).WithQuery("indica")

	out := renderList(s, st)

	assert.Contains(t, out, "Northern Lights")
	assert.NotContains(t, out, "Blue Dream")
}

func TestRenderGrid_AppliesFilter(t *testing.T) {
	st := newStyles(models.ThemeDark)
	s := testState(ModeGrid).WithQuery("indica")

	out := renderGrid(s, st)

	assert.Contains(t, out, "Northern Lights")
	assert.NotContains(t, out, "Blue Dream")
}

func TestRenderGrid_RowsFollowColumns(t *testing.T) {
	st := newStyles(models.ThemeDark)
	s := testState(ModeGrid)
	s.Width = 80

	out := renderGrid(s, st)

	// two columns, four records: Blue Dream and Sour Diesel share a row
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Blue Dream") {
			assert.Contains(t, line, "Sour Diesel")
		}
		if strings.Contains(line, "Northern Lights") {
			assert.Contains(t, line, "Mystery")
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	st := newStyles(models.ThemeDark)

	loading := State{Loading: true}
	assert.Contains(t, renderList(loading, st), app.MsgLoadingStrains)

	empty := State{}
	assert.Contains(t, renderList(empty, st), app.MsgNoStrainsFound)
	assert.Contains(t, renderGrid(empty, st), "Add your first strain")

	noMatch := testState(ModeGrid).WithQuery("zzz")
	assert.Contains(t, renderGrid(noMatch, st), app.MsgNoStrainsMatchSearch)
}

func TestRenderDetail_ShowsEveryField(t *testing.T) {
	st := newStyles(models.ThemeDark)
	strain := models.Strain{
		InternalID:  "3f9c",
		AliasID:     "42",
		Name:        "Gelato",
		Type:        "Indica",
		Source:      "Dispensary",
		Image:       "https://img.example/gelato.jpg",
		Setting:     "Rooftop",
		Format:      "Flower",
		Stoner:      "Sam",
		Impressions: "Creamy",
		Other:       "Would buy again",
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	s := State{Strains: []models.Strain{strain}}.OpenDetail()

	out := renderDetail(s, st)

	for _, want := range []string{
		"Gelato", "Indica", "Dispensary", "https://img.example/gelato.jpg", "Rooftop",
		"Flower", "Sam", "Creamy", "Would buy again", "42", "3f9c",
		"Impressions", "Internal ID", "Created",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRenderDetail_MissingRecord(t *testing.T) {
	st := newStyles(models.ThemeDark)
	s := State{Mode: ModeDetail, CurrentKey: "gone"}

	assert.Contains(t, renderDetail(s, st), app.MsgStrainNotFound)
}

func TestRenderStatusLine(t *testing.T) {
	st := newStyles(models.ThemeDark)

	t.Run("before the first probe", func(t *testing.T) {
		assert.Contains(t, renderStatusLine(State{}, st), "checking server")
	})

	t.Run("online guest", func(t *testing.T) {
		out := renderStatusLine(State{Probed: true, Online: true}, st)
		assert.Contains(t, out, "● online")
		assert.Contains(t, out, "guest")
		assert.Contains(t, out, "data: server")
	})

	t.Run("offline signed in", func(t *testing.T) {
		s := State{
			Probed:  true,
			Source:  service.SourceCache,
			Session: &models.Session{User: models.SessionUser{Email: "a@b.c"}},
			Status:  app.MsgStrainSaved,
		}
		out := renderStatusLine(s, st)
		assert.Contains(t, out, "● offline")
		assert.Contains(t, out, app.MsgOfflineNotice)
		assert.Contains(t, out, "signed in as a@b.c")
		assert.Contains(t, out, "data: cache")
		assert.Contains(t, out, app.MsgStrainSaved)
	})
}

func TestRenderSearch(t *testing.T) {
	st := newStyles(models.ThemeDark)

	assert.Contains(t, renderSearch(State{}, st), "/ search")
	assert.Equal(t, "/ sour█", renderSearch(State{Searching: true, Query: "sour"}, st))
	assert.Contains(t, renderSearch(State{Query: "sour"}, st), "esc: clear")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "Blue Dream", fitText("Blue Dream", 20))
	assert.Equal(t, "Blue D...", fitText("Blue Dream", 9))
	assert.Equal(t, "Bl", fitText("Blue Dream", 2))
	assert.Equal(t, "Blue Dream", fitText("Blue Dream", 0))
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name                  string
		total, cursor, height int
		wantStart, wantEnd    int
	}{
		{name: "everything fits", total: 5, cursor: 4, height: 10, wantStart: 0, wantEnd: 5},
		{name: "unbounded height", total: 50, cursor: 40, height: 0, wantStart: 0, wantEnd: 50},
		{name: "cursor at top", total: 50, cursor: 0, height: 10, wantStart: 0, wantEnd: 10},
		{name: "cursor centered", total: 50, cursor: 25, height: 10, wantStart: 20, wantEnd: 30},
		{name: "cursor at bottom", total: 50, cursor: 49, height: 10, wantStart: 40, wantEnd: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := window(tt.total, tt.cursor, tt.height)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
