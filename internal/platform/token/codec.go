// Package token implements the signed bearer token issued at registration
// and login.
//
// A token is three base64url segments (no padding) joined by dots: a fixed
// JSON header, the JSON claims, and an HMAC-SHA256 signature computed over
// the exact "header.payload" string. Verification always recomputes
// HMAC-SHA256 with the configured secret; the algorithm declared in the
// header is never consulted, so nothing branches on attacker-supplied input.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	// ErrMissingSecret indicates the codec was built without a secret.
	// This is a process configuration fault, not a per-request failure.
	ErrMissingSecret = errors.New("token secret is not configured")

	// ErrInvalidFormat indicates the token is not three non-empty
	// dot-separated segments.
	ErrInvalidFormat = errors.New("token format is invalid")

	// ErrInvalidSignature indicates the signature does not match the
	// header and payload, i.e. the token was tampered with or signed
	// with a different secret.
	ErrInvalidSignature = errors.New("token signature mismatch")

	// ErrInvalidPayload indicates the payload segment could not be
	// decoded or is missing a required claim.
	ErrInvalidPayload = errors.New("token payload is invalid")

	// ErrExpired indicates the token's expiry has passed.
	ErrExpired = errors.New("token has expired")

	// ErrNotYetValid indicates the token's issued-at lies in the future.
	ErrNotYetValid = errors.New("token issued in the future")
)

// Claims is the payload carried by a token. IssuedAt and ExpiresAt are
// seconds since the Unix epoch.
type Claims struct {
	UserID    uint   `json:"userId"`
	Email     string `json:"email"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// header is the fixed first segment. Typ is kept for wire compatibility
// with standard JWT consumers.
type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// DefaultTTL is the validity window applied by Issue when no TTL is
// configured.
const DefaultTTL = 24 * time.Hour

// Codec encodes and verifies tokens with a process-wide secret. The secret
// is injected at construction so tests can run with arbitrary secrets.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a Codec. ttl controls how far in the future Issue sets
// the expiry; zero or negative falls back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue encodes a fresh token bound to the given user identity, valid from
// now until now plus the configured TTL.
func (c *Codec) Issue(userID uint, email string) (string, error) {
	now := c.now()
	return c.Encode(Claims{
		UserID:    userID,
		Email:     email,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(c.ttl).Unix(),
	})
}

// Encode serializes the claims as "header.payload.signature".
func (c *Codec) Encode(claims Claims) (string, error) {
	if len(c.secret) == 0 {
		return "", ErrMissingSecret
	}

	headerJSON, err := json.Marshal(header{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", err
	}
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	signingInput := b64(headerJSON) + "." + b64(payloadJSON)
	return signingInput + "." + b64(c.sign(signingInput)), nil
}

// Decode verifies a token and returns its claims. The signature is checked
// against the raw header and payload segments before the payload is decoded,
// so a tampered payload always surfaces as ErrInvalidSignature.
func (c *Codec) Decode(tokenStr string) (Claims, error) {
	if len(c.secret) == 0 {
		return Claims{}, ErrMissingSecret
	}

	parts := strings.Split(tokenStr, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Claims{}, ErrInvalidFormat
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return Claims{}, ErrInvalidSignature
	}
	if !hmac.Equal(sig, c.sign(parts[0]+"."+parts[1])) {
		return Claims{}, ErrInvalidSignature
	}

	payloadJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return Claims{}, ErrInvalidPayload
	}
	// Pointer fields distinguish absent claims from zero values.
	var raw struct {
		UserID    *uint   `json:"userId"`
		Email     *string `json:"email"`
		IssuedAt  *int64  `json:"iat"`
		ExpiresAt *int64  `json:"exp"`
	}
	if err := json.Unmarshal(payloadJSON, &raw); err != nil {
		return Claims{}, ErrInvalidPayload
	}
	if raw.UserID == nil || raw.Email == nil || raw.IssuedAt == nil || raw.ExpiresAt == nil {
		return Claims{}, ErrInvalidPayload
	}

	claims := Claims{
		UserID:    *raw.UserID,
		Email:     *raw.Email,
		IssuedAt:  *raw.IssuedAt,
		ExpiresAt: *raw.ExpiresAt,
	}

	now := c.now().Unix()
	if claims.ExpiresAt < now {
		return Claims{}, ErrExpired
	}
	if claims.IssuedAt > now {
		return Claims{}, ErrNotYetValid
	}

	return claims, nil
}

// sign computes the HMAC-SHA256 signature over the signing input.
func (c *Codec) sign(signingInput string) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(signingInput))
	return mac.Sum(nil)
}

func b64(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}
