// Package loader provides the feature registry of the HTTP server.
//
// Each feature implements Feature and registers its routes in Load. The
// start command registers features on a Manager and calls LoadAll once the
// global middleware is in place.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
