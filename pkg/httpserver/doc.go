// Package httpserver wraps net/http with graceful shutdown and health probes.
//
// Run blocks until the given context is cancelled or the process receives
// SIGINT or SIGTERM, then calls http.Server.Shutdown bounded by
// Config.ShutdownTimeout. LivenessHandler and ReadinessHandler serve the
// /health endpoints; readiness runs the supplied checks, such as a redis
// ping, on every request.
package httpserver
