// Package firetoken generates signed authentication tokens for the legacy
// Firebase authentication scheme.
//
// Tokens use HMAC-SHA256 with the standard compact layout
// base64url(header).base64url(claims).base64url(signature), but the claims
// body follows the legacy Firebase conventions rather than RFC 7519: the
// issued-at timestamp is in milliseconds, recognized security options
// (admin, debug, ...) sit at the top level, and user data is nested under a
// single "d" key. Tokens are signed but never encrypted — anyone can decode
// the claims segment.
//
// The claims encoder is deliberately minimal and dependency-free. It accepts
// only flat maps of scalar values (strings, booleans, integers, floats, nil)
// and performs no JSON string escaping, so keys and string values must be
// free of characters that require escaping (quotes, backslashes, control
// characters). This matches the legacy wire format byte for byte; it is not
// a general-purpose JSON encoder.
//
// A Generator is not safe for concurrent use. Use one Generator per
// goroutine, or guard SetData/SetOption/CreateToken with external locking.
//
// # Usage
//
//	import "github.com/arissamad/firebasetokengenerator"
//
//	gen, err := firetoken.New("your-firebase-secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen.SetOption("admin", true)
//	gen.SetData("uid", "user-42")
//
//	token, err := gen.CreateToken()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Errors are returned as sentinel variables and can be compared using
// errors.Is. New returns ErrMissingSecret for an empty secret. CreateToken
// returns ErrUnsupportedType, wrapped with the offending Go type, when an
// accumulated value falls outside the scalar set; no partial token is
// produced on failure.
package firetoken
