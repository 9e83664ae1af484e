// Package pkgjwt issues and verifies signed bearer tokens.
//
// Tokens are HS256 JWTs carrying the registered claims only: subject, issuer,
// issued-at, expiry and a unique token ID. Verification pins the signing
// method and the issuer so tokens minted elsewhere with the same secret are
// rejected.
package pkgjwt
