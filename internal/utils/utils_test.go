package utils

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/smoke-stack/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewRecordID
// ─────────────────────────────────────────────

func TestNewRecordID_Base36WithTimestampSuffix(t *testing.T) {
	now := time.UnixMilli(1712345678901)
	id := newRecordID(now)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-z]+$`), id)

	suffix := strconv.FormatInt(now.UnixMilli(), 36)
	assert.True(t, strings.HasSuffix(id, suffix))
	assert.Greater(t, len(id), len(suffix))
}

func TestNewRecordID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := NewRecordID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

// ─────────────────────────────────────────────
// NewTraceID
// ─────────────────────────────────────────────

func TestNewTraceID_IsUUID(t *testing.T) {
	parsed, err := uuid.Parse(NewTraceID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

// ─────────────────────────────────────────────
// placeholder tokens
// ─────────────────────────────────────────────

func TestPlaceholderToken_RoundTrip(t *testing.T) {
	now := time.Unix(1712345678, 0)
	user := models.SessionUser{Email: "a@b.c", ID: "user_1712345678000"}

	token, err := GeneratePlaceholderToken(user, now)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := ParsePlaceholderToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, PlaceholderIssuer, claims.Issuer)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
}

func TestGeneratePlaceholderToken_RequiresUserID(t *testing.T) {
	_, err := GeneratePlaceholderToken(models.SessionUser{Email: "a@b.c"}, time.Now())
	assert.Error(t, err)
}

func TestParsePlaceholderToken_Garbage(t *testing.T) {
	_, err := ParsePlaceholderToken("placeholder_token_123")
	assert.Error(t, err)
}
