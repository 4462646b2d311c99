package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/smoke-stack/models"
	"github.com/golang-jwt/jwt/v5"
)

// PlaceholderIssuer is the "iss" claim of every placeholder session token.
const PlaceholderIssuer = "smokestack-placeholder"

// GeneratePlaceholderToken mints an unsigned JWT (alg "none") for user. The
// token only identifies a local session; nothing ever verifies it.
func GeneratePlaceholderToken(user models.SessionUser, now time.Time) (string, error) {
	if user.ID == "" {
		return "", errors.New("invalid params for generating placeholder token")
	}

	claims := models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   PlaceholderIssuer,
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Email: user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		return "", fmt.Errorf("error occurred during building placeholder token: %w", err)
	}

	return signed, nil
}

// ParsePlaceholderToken decodes the claims of a placeholder token without
// verifying it.
func ParsePlaceholderToken(tokenString string) (models.SessionClaims, error) {
	var claims models.SessionClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.SessionClaims{}, fmt.Errorf("error occurred parsing placeholder token: %w", err)
	}

	if claims.Subject == "" {
		return models.SessionClaims{}, errors.New("empty subject error")
	}

	return claims, nil
}
