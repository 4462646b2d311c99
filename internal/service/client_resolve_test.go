package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/smoke-stack/models"
)

var errOffline = errors.New("connection refused")

func testState() []models.Strain {
	return []models.Strain{
		{InternalID: "a1", AliasID: "1", Name: "Alpha", Type: "indica", Source: "shop"},
		{AliasID: "1700000000000", Name: "Local", Type: "sativa"},
	}
}

func TestResolve_Online(t *testing.T) {
	now := time.UnixMilli(1_800_000_000_000)

	tests := []struct {
		name   string
		m      Mutation
		result MutationResult
		want   []models.Strain
	}{
		{
			name:   "list replaces the collection and fills missing aliases",
			m:      Mutation{Kind: MutationList},
			result: MutationResult{Strains: []models.Strain{{InternalID: "z9", Name: "Zeta"}}},
			want:   []models.Strain{{InternalID: "z9", AliasID: "z9", Name: "Zeta"}},
		},
		{
			name:   "create prepends the server record",
			m:      Mutation{Kind: MutationCreate, Input: models.StrainInput{Name: "New", Type: "hybrid"}},
			result: MutationResult{Strain: models.Strain{InternalID: "n1", AliasID: "n1", Name: "New", Type: "hybrid"}},
			want: append([]models.Strain{{InternalID: "n1", AliasID: "n1", Name: "New", Type: "hybrid"}},
				testState()...),
		},
		{
			name:   "update replaces the record with the key",
			m:      Mutation{Kind: MutationUpdate, Key: "a1", Input: models.StrainInput{Name: "Alpha2", Type: "indica"}},
			result: MutationResult{Strain: models.Strain{InternalID: "a1", AliasID: "1", Name: "Alpha2", Type: "indica"}},
			want: []models.Strain{
				{InternalID: "a1", AliasID: "1", Name: "Alpha2", Type: "indica"},
				testState()[1],
			},
		},
		{
			name: "delete removes the record with the key",
			m:    Mutation{Kind: MutationDelete, Key: "1700000000000"},
			want: testState()[:1],
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(testState(), tt.m, tt.result, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Offline(t *testing.T) {
	now := time.UnixMilli(1_800_000_000_123)

	t.Run("create prepends a local record keyed by timestamp", func(t *testing.T) {
		in := models.StrainInput{ID: "ignored", Name: "Offline", Type: "hybrid", Image: "img"}
		got := Resolve(testState(), Mutation{Kind: MutationCreate, Input: in}, MutationResult{Err: errOffline}, now)

		require.Len(t, got, 3)
		assert.Equal(t, "", got[0].InternalID)
		assert.Equal(t, "1800000000123", got[0].AliasID)
		assert.Equal(t, "1800000000123", got[0].Key())
		assert.Equal(t, "Offline", got[0].Name)
		assert.Equal(t, "img", got[0].Image)
		assert.True(t, got[0].CreatedAt.IsZero())
	})

	t.Run("update overwrites mutable fields and keeps identifiers", func(t *testing.T) {
		in := models.StrainInput{Name: "Alpha2", Type: "indica"}
		got := Resolve(testState(), Mutation{Kind: MutationUpdate, Key: "a1", Input: in}, MutationResult{Err: errOffline}, now)

		require.Len(t, got, 2)
		assert.Equal(t, "a1", got[0].InternalID)
		assert.Equal(t, "1", got[0].AliasID)
		assert.Equal(t, "Alpha2", got[0].Name)
		assert.Equal(t, "", got[0].Source)
	})

	t.Run("update of unknown key changes nothing", func(t *testing.T) {
		got := Resolve(testState(), Mutation{Kind: MutationUpdate, Key: "nope"}, MutationResult{Err: errOffline}, now)
		assert.Equal(t, testState(), got)
	})

	t.Run("delete removes locally", func(t *testing.T) {
		got := Resolve(testState(), Mutation{Kind: MutationDelete, Key: "a1"}, MutationResult{Err: errOffline}, now)
		assert.Equal(t, testState()[1:], got)
	})

	t.Run("failed list keeps the collection", func(t *testing.T) {
		got := Resolve(testState(), Mutation{Kind: MutationList}, MutationResult{Err: errOffline}, now)
		assert.Equal(t, testState(), got)
	})
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	state := testState()
	before := testState()

	_ = Resolve(state, Mutation{Kind: MutationUpdate, Key: "a1", Input: models.StrainInput{Name: "X", Type: "Y"}}, MutationResult{Err: errOffline}, time.Now())
	_ = Resolve(state, Mutation{Kind: MutationDelete, Key: "a1"}, MutationResult{}, time.Now())

	assert.Equal(t, before, state)
}
