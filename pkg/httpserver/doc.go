// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives or the
// listener fails, then drains in-flight requests for up to ShutdownTimeout.
// Settings come from Config (HTTP_* variables) or functional options.
//
// HealthHandler reports readiness by running named checks, typically the
// Healthcheck functions of the redis, mongo and pg packages.
package httpserver
