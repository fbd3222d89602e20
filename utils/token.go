package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Session tokens are colon-joined: "subjectID:issuedAtMillis:signature". The
// signature is hex HMAC-SHA256 over the first two fields. A two-field unsigned
// form exists as a dev convenience and is only ever accepted when no secret is
// configured and the app is not running in production.

var (
	// ErrTokenMalformed covers every shape problem: wrong field count, bad
	// integers, empty fields.
	ErrTokenMalformed = errors.New("malformed session token")
	// ErrTokenBadSignature means the token parsed but its signature did not
	// match the configured secret.
	ErrTokenBadSignature = errors.New("invalid session token signature")
	// ErrTokenUnsigned means an unsigned token was presented where a signed
	// one is required.
	ErrTokenUnsigned = errors.New("unsigned session token not accepted")
)

// TokenKind tags the two accepted token shapes.
type TokenKind int

const (
	// TokenSigned is the three-field form carrying an HMAC signature.
	TokenSigned TokenKind = iota
	// TokenUnsigned is the two-field dev fallback.
	TokenUnsigned
)

// ParsedToken is the result of structurally parsing a session token. Parsing
// says nothing about authenticity; only SessionCodec.Verify does.
type ParsedToken struct {
	Kind      TokenKind
	SubjectID uint
	IssuedAt  time.Time
	Signature string
	// Payload is the raw signed portion, kept verbatim so verification never
	// depends on re-serialization.
	Payload string
}

// ParseToken splits a token into one of its two accepted shapes.
func ParseToken(token string) (ParsedToken, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return ParsedToken{}, ErrTokenMalformed
	}

	subjectID, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil || subjectID == 0 {
		return ParsedToken{}, ErrTokenMalformed
	}
	issuedMillis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ParsedToken{}, ErrTokenMalformed
	}

	parsed := ParsedToken{
		Kind:      TokenUnsigned,
		SubjectID: uint(subjectID),
		IssuedAt:  time.UnixMilli(issuedMillis),
		Payload:   parts[0] + ":" + parts[1],
	}
	if len(parts) == 3 {
		if parts[2] == "" {
			return ParsedToken{}, ErrTokenMalformed
		}
		parsed.Kind = TokenSigned
		parsed.Signature = parts[2]
	}
	return parsed, nil
}

// SessionCodec signs and verifies the session tokens for one principal class.
// The customer and admin codecs are independent instances with separate
// cookies and no shared state.
type SessionCodec struct {
	secret     []byte
	production bool
}

// NewSessionCodec builds a codec. An empty secret is tolerated outside
// production only; Sign then emits unsigned tokens and Verify only accepts
// them.
func NewSessionCodec(secret string, production bool) SessionCodec {
	return SessionCodec{secret: []byte(secret), production: production}
}

// Sign builds a token for the given subject.
func (c SessionCodec) Sign(subjectID uint) string {
	payload := fmt.Sprintf("%d:%d", subjectID, time.Now().UnixMilli())
	if len(c.secret) == 0 {
		return payload
	}
	return payload + ":" + c.mac(payload)
}

// Verify resolves a token to its subject id. All failures collapse to
// (0, false); callers never learn whether a token was malformed, unsigned,
// or carried a bad signature.
func (c SessionCodec) Verify(token string) (uint, bool) {
	parsed, err := ParseToken(token)
	if err != nil {
		return 0, false
	}

	if len(c.secret) > 0 {
		if parsed.Kind != TokenSigned {
			return 0, false
		}
		if !constantTimeEqual(c.mac(parsed.Payload), parsed.Signature) {
			return 0, false
		}
		return parsed.SubjectID, true
	}

	// No secret configured: accept the unsigned form outside production only.
	if parsed.Kind == TokenUnsigned && !c.production {
		return parsed.SubjectID, true
	}
	return 0, false
}

func (c SessionCodec) mac(payload string) string {
	h := hmac.New(sha256.New, c.secret)
	h.Write([]byte(payload))
	return hex.EncodeToString(h.Sum(nil))
}

// constantTimeEqual compares two strings by XOR-accumulating over the full
// length. Unequal lengths return false immediately; that timing signal only
// reveals the length, which the token format already exposes.
func constantTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := 0; i < len(a); i++ {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
