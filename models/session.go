// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// SessionUser is the locally stored user object of a placeholder session.
type SessionUser struct {
	Email string `json:"email"`
	ID    string `json:"_id"`
}

// Session is a placeholder session: a token minted on the client and the
// user it was minted for. Nothing about it is verified by a server.
type Session struct {
	Token string
	User  SessionUser
}

// SessionClaims is the claim set carried by a placeholder session token.
// Subject holds [SessionUser.ID].
type SessionClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

// Theme is the persisted color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme. Unknown values toggle to dark.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Credentials is what the login and registration screens submit.
// ConfirmPIN is only used by registration.
type Credentials struct {
	Email      string
	PIN        string
	ConfirmPIN string
}
