// Package pkglog configures slog for the service.
//
// Records are JSON on stdout with "ts", "severity" and "file" keys. The
// correlation ID and the authenticated user found in the context are added to
// every record written with a *Context logging call.
package pkglog
