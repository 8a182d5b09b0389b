// Package reqctx provides centralized request context management.
//
// All context keys are private unexported types to prevent collisions.
// Access is provided through type-safe getter and setter functions.
//
// The following contracts are guaranteed:
//
//   - RequestMeta is always set by HTTP middleware for all requests
//   - Claims is set only for authenticated requests (token present and valid)
package reqctx
