package main

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/rs/zerolog/log"
)

const cacheControlValue = "no-store, no-cache, must-revalidate"

// devHeaders sets the two PWA development headers on every response,
// success or error: caching is disabled so edited files are never
// served stale, and a service worker served from a subpath may claim
// the origin root.
func devHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControlValue)
		w.Header().Set("Service-Worker-Allowed", "/")
		next.ServeHTTP(w, r)
	})
}

// corsHeaders allows cross-origin requests, for exercising the app
// from another device on the LAN. Opt-in via --cors.
func corsHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

// echoRequests logs one event per request with status, size and timing.
func echoRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", m.Code).
			Int64("bytes", m.Written).
			Dur("duration", m.Duration).
			Msg("request")
	})
}
