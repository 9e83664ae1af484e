// Package pkghash hashes and verifies user passwords with bcrypt.
package pkghash
