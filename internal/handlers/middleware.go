package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

type contextKey string

const deviceCtxKey = contextKey("device")

// RequestLogger logs one line per request with method, path, status and
// duration
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// RequireDevice enforces a valid device token and injects the device ID
// into the request context
func RequireDevice(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				respondWithError(w, http.StatusUnauthorized, "missing token", nil)
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				respondWithError(w, http.StatusUnauthorized, "invalid token", nil)
				return
			}

			deviceID, _ := claims["sub"].(string)
			if deviceID == "" {
				respondWithError(w, http.StatusUnauthorized, "invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), deviceCtxKey, deviceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// deviceID extracts the authenticated device ID placed by RequireDevice
func deviceID(r *http.Request) string {
	id, _ := r.Context().Value(deviceCtxKey).(string)
	return id
}

// bearerToken extracts a bearer token from the Authorization header
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
