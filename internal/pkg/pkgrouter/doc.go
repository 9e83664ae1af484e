// Package pkgrouter is the HTTP layer shared by feature modules.
//
// Handlers return a payload or an error. Payloads are wrapped in a JSON
// envelope unless they are a File; errors are rendered from *pkgerror.Error.
// Every route runs behind recovery, correlation ID and request logging
// middleware, and can add MiddlewareBearerAuth.
package pkgrouter
