// Package server holds the HTTP server configuration.
//
// The start command owns the fiber app itself; this package only defines the
// settings it needs: listen port, API key and the graceful shutdown budget.
//
// # Usage
//
// Embedded by core/config and read in cmd/start.go:
//
//	app.Listen(cfg.Server.ListenAddr())
package server
