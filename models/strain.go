// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Strain is a single catalog entry.
//
// A strain carries two identifiers. InternalID is generated by the server,
// never changes and is the primary identity. AliasID is an optional secondary
// identifier supplied by the client; when omitted it defaults to InternalID.
// Lookups accept either of them.
type Strain struct {
	// InternalID is the server-generated primary identifier.
	// Empty for records created on the client while the API was unreachable.
	InternalID string `json:"_id,omitempty"`

	// AliasID is the secondary identifier. Unique when present.
	AliasID string `json:"id"`

	Name string `json:"name"`
	Type string `json:"type"`

	Source      string `json:"source"`
	Image       string `json:"image"`
	Setting     string `json:"setting"`
	Format      string `json:"format"`
	Stoner      string `json:"stoner"`
	Impressions string `json:"impressions"`
	Other       string `json:"other"`

	// CreatedAt and UpdatedAt are assigned by the server. Zero for
	// offline-created records.
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Key returns the identifier the client collection uses for this record:
// InternalID when the record came from the server, AliasID otherwise.
func (s Strain) Key() string {
	if s.InternalID != "" {
		return s.InternalID
	}
	return s.AliasID
}

// Apply overwrites every mutable field of s with the values from in.
// Identifiers and timestamps are left untouched.
func (s Strain) Apply(in StrainInput) Strain {
	s.Name = in.Name
	s.Type = in.Type
	s.Source = in.Source
	s.Image = in.Image
	s.Setting = in.Setting
	s.Format = in.Format
	s.Stoner = in.Stoner
	s.Impressions = in.Impressions
	s.Other = in.Other
	return s
}

// StrainInput is the request body of create and update operations.
//
// ID is honoured only on create, where it overrides the default alias.
// It accepts JSON strings and numbers.
type StrainInput struct {
	ID LooseString `json:"id,omitempty"`

	Name string `json:"name"`
	Type string `json:"type"`

	Source      string `json:"source"`
	Image       string `json:"image"`
	Setting     string `json:"setting"`
	Format      string `json:"format"`
	Stoner      string `json:"stoner"`
	Impressions string `json:"impressions"`
	Other       string `json:"other"`
}

// ToStrain builds a new record from the input. Identifiers other than the
// alias and the timestamps stay empty.
func (in StrainInput) ToStrain() Strain {
	return Strain{AliasID: in.ID.String()}.Apply(in)
}

// InputFromStrain extracts the mutable fields of s into a StrainInput.
func InputFromStrain(s Strain) StrainInput {
	return StrainInput{
		Name:        s.Name,
		Type:        s.Type,
		Source:      s.Source,
		Image:       s.Image,
		Setting:     s.Setting,
		Format:      s.Format,
		Stoner:      s.Stoner,
		Impressions: s.Impressions,
		Other:       s.Other,
	}
}
