// Package middleware groups the Fiber middleware of the sync server.
//
//   - rayid: tags each request with a ray id (X-Ray-ID) for log correlation.
//   - auth: requires the configured API key in X-API-Key.
package middleware
