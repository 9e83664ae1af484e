// Package pkgconfig reads configuration through the Config interface.
//
// The Viper implementation loads a YAML file and lets environment variables
// override any key, with dots replaced by underscores (AUTH_SECRET for
// auth.secret). Lists and maps are comma separated strings; binary values are
// base64.
package pkgconfig
