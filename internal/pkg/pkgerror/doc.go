// Package pkgerror defines the error type returned by usecases.
//
// An *Error carries a client-facing message, a type, a code that maps to an
// HTTP status and optional detail fields rendered under "error" in responses.
// Stores return plain sentinels such as ErrNotFound; usecases translate them.
package pkgerror
