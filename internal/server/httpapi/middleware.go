package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/logging"
	"github.com/dmitrijs2005/linkfo/internal/server/auth"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger writes one access-log line per request.
func requestLogger(logger logging.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info(r.Context(), "HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"requestID", middleware.GetReqID(r.Context()),
				"remoteAddr", r.RemoteAddr,
			)
		})
	}
}

// authenticate rejects requests without a valid bearer token and stores
// the token's user id in the request context.
func authenticate(tokens *auth.Codec, logger logging.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.ParseAuthorizationHeader(r.Header.Get(common.AuthorizationHeaderName))
			if err != nil {
				writeError(w, r, logger, err)
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				logger.Warn(r.Context(), "token rejected", "path", r.URL.Path, "reason", err)
				writeError(w, r, logger, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

// ownerID returns the authenticated user. Only valid behind authenticate.
func ownerID(r *http.Request) string {
	id, _ := auth.UserIDFromContext(r.Context())
	return id
}
