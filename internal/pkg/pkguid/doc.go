// Package pkguid generates identifiers.
//
// StringID is used for upload, event, token and correlation IDs (UUIDv7);
// NumberID for user IDs (Snowflake).
package pkguid
