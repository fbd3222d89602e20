package utils

import (
	"crypto/rand"
	"fmt"
)

// referralAlphabet is the 32-character set used for referral codes. Visually
// ambiguous characters (0/O, 1/I) are excluded so codes survive being read
// aloud or handwritten.
const referralAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const (
	referralCodeLength         = 8
	referralCodeFallbackLength = 10
	referralCodeMaxAttempts    = 5
)

// GenerateReferralCode returns a random code of n characters from the
// referral alphabet.
func GenerateReferralCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		// 32 characters, so a byte maps uniformly via the low 5 bits.
		buf[i] = referralAlphabet[b&31]
	}
	return string(buf), nil
}

// NewUniqueReferralCode generates a code that the exists check does not
// already know. Up to five 8-character candidates are tried; if all collide,
// a single 10-character code is returned without a further check. The
// residual collision risk at that length is accepted; the unique constraint
// on the codes table is the real safety net.
func NewUniqueReferralCode(exists func(code string) (bool, error)) (string, error) {
	for attempt := 0; attempt < referralCodeMaxAttempts; attempt++ {
		code, err := GenerateReferralCode(referralCodeLength)
		if err != nil {
			return "", err
		}
		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return GenerateReferralCode(referralCodeFallbackLength)
}
