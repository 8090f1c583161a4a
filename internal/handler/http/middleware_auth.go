package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// auth is an HTTP middleware that enforces bearer JWT authentication.
//
// It extracts the token from the "Authorization" header, parses it via
// [service.AuthService.ParseToken] and stores the user ID in the request
// context with [utils.WithUserID].
//
// A missing, malformed, expired or otherwise invalid token is answered with
// 401 and [service.ErrTokenIsExpiredOrInvalid]. That is the only way this
// middleware fails a request.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Str("func", "Handler.auth").Msg("rejecting request without bearer token")
			writeError(w, r, "Handler.auth", service.ErrTokenIsExpiredOrInvalid)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, "Handler.auth", service.ErrTokenIsExpiredOrInvalid)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
