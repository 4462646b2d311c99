package service

import (
	"slices"
	"strconv"
	"time"

	"github.com/MKhiriev/smoke-stack/models"
)

// MutationKind names a catalog operation issued by the client.
type MutationKind int

const (
	MutationList MutationKind = iota
	MutationCreate
	MutationUpdate
	MutationDelete
)

// Mutation is one catalog operation as the client issued it. Key is the
// [models.Strain.Key] of the target record for update and delete.
type Mutation struct {
	Kind  MutationKind
	Key   string
	Input models.StrainInput
}

// MutationResult is what the API answered. Err is nil only on a 2xx answer.
type MutationResult struct {
	Strains []models.Strain
	Strain  models.Strain
	Err     error
}

// Resolve computes the next client collection from the current one, the
// mutation that was attempted and the API's answer. It never mutates state.
//
// On success the server's answer is applied: a list replaces the collection,
// a created record is prepended, an updated record replaces the record with
// the mutation's key and a delete removes it. On any failure the mutation is
// applied locally: a create prepends a record whose alias is the millisecond
// timestamp now, an update merges the input into the matching record and a
// delete removes it. A failed list leaves the collection unchanged.
func Resolve(state []models.Strain, m Mutation, result MutationResult, now time.Time) []models.Strain {
	if result.Err == nil {
		return applyServerResult(state, m, result)
	}
	return applyLocally(state, m, now)
}

func applyServerResult(state []models.Strain, m Mutation, result MutationResult) []models.Strain {
	switch m.Kind {
	case MutationList:
		next := make([]models.Strain, 0, len(result.Strains))
		for _, s := range result.Strains {
			next = append(next, normalizeIdentifiers(s))
		}
		return next
	case MutationCreate:
		return prepend(state, normalizeIdentifiers(result.Strain))
	case MutationUpdate:
		return replaceByKey(state, m.Key, func(models.Strain) models.Strain {
			return normalizeIdentifiers(result.Strain)
		})
	case MutationDelete:
		return removeByKey(state, m.Key)
	}
	return slices.Clone(state)
}

func applyLocally(state []models.Strain, m Mutation, now time.Time) []models.Strain {
	switch m.Kind {
	case MutationCreate:
		local := models.Strain{AliasID: strconv.FormatInt(now.UnixMilli(), 10)}.Apply(m.Input)
		return prepend(state, local)
	case MutationUpdate:
		return replaceByKey(state, m.Key, func(s models.Strain) models.Strain {
			return s.Apply(m.Input)
		})
	case MutationDelete:
		return removeByKey(state, m.Key)
	}
	return slices.Clone(state)
}

// normalizeIdentifiers fills an empty alias with the internal id.
func normalizeIdentifiers(s models.Strain) models.Strain {
	if s.AliasID == "" {
		s.AliasID = s.InternalID
	}
	return s
}

func prepend(state []models.Strain, s models.Strain) []models.Strain {
	next := make([]models.Strain, 0, len(state)+1)
	next = append(next, s)
	return append(next, state...)
}

func replaceByKey(state []models.Strain, key string, replace func(models.Strain) models.Strain) []models.Strain {
	next := slices.Clone(state)
	for i, s := range next {
		if s.Key() == key {
			next[i] = replace(s)
		}
	}
	return next
}

func removeByKey(state []models.Strain, key string) []models.Strain {
	next := make([]models.Strain, 0, len(state))
	for _, s := range state {
		if s.Key() != key {
			next = append(next, s)
		}
	}
	return next
}
