// Package httpserver centralizes the http.Server defaults so main stays
// declarative.
package httpserver

import (
	"net/http"
	"time"
)

// readHeaderTimeout bounds slow-header clients before the request reaches
// any handler.
const readHeaderTimeout = 5 * time.Second

// New builds the API server around the given handler.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}
