// Package loader provides the plugin-like feature loading system.
//
// Each HTTP-facing module (catalog, sync, integrity) implements Feature and is
// registered with a Manager in cmd/start.go.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
//   - Register adds a feature.
//   - LoadAll loads every enabled feature in registration order.
package loader
