package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	codec := NewSessionCodec("test-secret", false)

	token := codec.Sign(42)
	id, ok := codec.Verify(token)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	// Tokens are not single-use; verification is stable across calls.
	id, ok = codec.Verify(token)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestSignedTokenShape(t *testing.T) {
	codec := NewSessionCodec("test-secret", true)
	parts := strings.Split(codec.Sign(7), ":")
	assert.Len(t, parts, 3)
	assert.Equal(t, "7", parts[0])
	// hex HMAC-SHA256
	assert.Len(t, parts[2], 64)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	codec := NewSessionCodec("test-secret", true)
	token := codec.Sign(42)

	tampered := token[:len(token)-1]
	if strings.HasSuffix(token, "0") {
		tampered += "1"
	} else {
		tampered += "0"
	}
	_, ok := codec.Verify(tampered)
	assert.False(t, ok)

	// Different subject with the original signature
	parts := strings.Split(token, ":")
	forged := "43:" + parts[1] + ":" + parts[2]
	_, ok = codec.Verify(forged)
	assert.False(t, ok)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewSessionCodec("secret-a", true)
	verifier := NewSessionCodec("secret-b", true)

	_, ok := verifier.Verify(signer.Sign(42))
	assert.False(t, ok)
}

func TestUnsignedDevFallback(t *testing.T) {
	dev := NewSessionCodec("", false)
	token := dev.Sign(9)
	assert.Len(t, strings.Split(token, ":"), 2)

	id, ok := dev.Verify(token)
	assert.True(t, ok)
	assert.Equal(t, uint(9), id)

	// Production never accepts the unsigned form.
	prod := NewSessionCodec("", true)
	_, ok = prod.Verify(token)
	assert.False(t, ok)

	// A codec with a secret never accepts the unsigned form either.
	signed := NewSessionCodec("test-secret", false)
	_, ok = signed.Verify(token)
	assert.False(t, ok)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	codec := NewSessionCodec("test-secret", true)
	for _, token := range []string{
		"",
		"42",
		"abc:123:sig",
		"42:notmillis:sig",
		"0:123:sig",
		"42:123:",
		"42:123:sig:extra",
	} {
		_, ok := codec.Verify(token)
		assert.False(t, ok, "token %q should not verify", token)
	}
}

func TestParseTokenVariants(t *testing.T) {
	parsed, err := ParseToken("42:1700000000000")
	assert.NoError(t, err)
	assert.Equal(t, TokenUnsigned, parsed.Kind)
	assert.Equal(t, uint(42), parsed.SubjectID)
	assert.Equal(t, "42:1700000000000", parsed.Payload)

	parsed, err = ParseToken("42:1700000000000:deadbeef")
	assert.NoError(t, err)
	assert.Equal(t, TokenSigned, parsed.Kind)
	assert.Equal(t, "deadbeef", parsed.Signature)
	assert.Equal(t, "42:1700000000000", parsed.Payload)

	_, err = ParseToken("x")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestConstantTimeEqual(t *testing.T) {
	assert.True(t, constantTimeEqual("abcdef", "abcdef"))
	assert.False(t, constantTimeEqual("abcdef", "abcdeg"))
	// Length mismatch must return false without panicking.
	assert.False(t, constantTimeEqual("abc", "abcdef"))
	assert.False(t, constantTimeEqual("abcdef", ""))
	assert.True(t, constantTimeEqual("", ""))
}
