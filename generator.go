package firetoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// header is the fixed token header required by the legacy Firebase verifier.
const header = `{"alg":"HS256"}`

// Generator builds signed legacy Firebase tokens for a single secret.
// The secret is fixed for the lifetime of the Generator; data and options
// accumulate across calls and are serialized fresh on every CreateToken.
type Generator struct {
	secret  []byte
	data    map[string]any
	options map[string]any
}

// New creates a Generator for the given Firebase secret.
// The secret is kept in memory only and is never logged or echoed.
func New(secret string) (*Generator, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	return &Generator{
		secret:  []byte(secret),
		data:    make(map[string]any),
		options: make(map[string]any),
	}, nil
}

// SetData sets a user data entry, nested under the claims' "d" key.
// Setting the same name again overwrites the previous value. The value is
// not validated here; CreateToken fails with ErrUnsupportedType if it is not
// a scalar (string, bool, integer, float, or nil).
func (g *Generator) SetData(name string, value any) {
	g.data[name] = value
}

// SetOption sets a Firebase security option at the claims' top level,
// e.g. "admin" or "debug". Option names are not checked against the set
// Firebase recognizes; unknown names are passed through. Same overwrite and
// scalar-value contract as SetData.
func (g *Generator) SetOption(name string, value any) {
	g.options[name] = value
}

// CreateToken serializes the accumulated claims, signs them, and returns the
// complete three-segment token. The issued-at timestamp is captured per call,
// so repeated calls with identical state still yield distinct tokens.
func (g *Generator) CreateToken() (string, error) {
	claims, err := g.Claims()
	if err != nil {
		return "", err
	}

	signingInput := encodeSegment([]byte(header)) + "." + encodeSegment([]byte(claims))
	signature := g.sign(signingInput)

	return signingInput + "." + encodeSegment(signature), nil
}

// sign computes the raw HMAC-SHA256 digest over the signing input.
func (g *Generator) sign(signingInput string) []byte {
	h := hmac.New(sha256.New, g.secret)
	h.Write([]byte(signingInput))
	return h.Sum(nil)
}

// encodeSegment encodes a token segment as unpadded base64url per RFC 4648 §5.
func encodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}
