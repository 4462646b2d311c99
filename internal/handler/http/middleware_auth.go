package http

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/smoke-stack/internal/logger"
	"github.com/MKhiriev/smoke-stack/internal/utils"
)

// withSessionIdentity tags the request logger with the user id of a
// placeholder session token. Sessions are not verified, so requests are never
// rejected here; a missing or malformed header only skips the tag.
func (h *Handler) withSessionIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := utils.ParsePlaceholderToken(token)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.withSessionIdentity").Msg("unreadable session token")
			next.ServeHTTP(w, r)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", claims.Subject)
		})
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}
