// Package server holds the HTTP server configuration.
//
// The main application entry point starts the server; this package only
// defines and validates its settings (listen port, API key, body limit).
package server
