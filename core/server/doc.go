// Package server holds the HTTP server configuration.
//
// The start command serves the sync API on Address(); when ApiKey is set,
// every /sync route requires it in the X-API-Key header.
package server
