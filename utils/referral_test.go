package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferralAlphabetExcludesAmbiguousCharacters(t *testing.T) {
	assert.Len(t, referralAlphabet, 32)
	for _, ch := range "0O1I" {
		assert.NotContains(t, referralAlphabet, string(ch))
	}
}

func TestGenerateReferralCode(t *testing.T) {
	code, err := GenerateReferralCode(8)
	assert.NoError(t, err)
	assert.Len(t, code, 8)
	for _, ch := range code {
		assert.Contains(t, referralAlphabet, string(ch))
	}
}

func TestNewUniqueReferralCodeFirstTry(t *testing.T) {
	checked := 0
	code, err := NewUniqueReferralCode(func(string) (bool, error) {
		checked++
		return false, nil
	})
	assert.NoError(t, err)
	assert.Len(t, code, 8)
	assert.Equal(t, 1, checked)
}

func TestNewUniqueReferralCodeSkipsTakenCodes(t *testing.T) {
	taken := map[string]bool{}
	attempts := 0
	code, err := NewUniqueReferralCode(func(c string) (bool, error) {
		attempts++
		if attempts <= 3 {
			taken[c] = true
			return true, nil
		}
		return false, nil
	})
	assert.NoError(t, err)
	assert.Len(t, code, 8)
	assert.False(t, taken[code])
}

func TestNewUniqueReferralCodeFallsBackToLongerCode(t *testing.T) {
	checked := 0
	code, err := NewUniqueReferralCode(func(string) (bool, error) {
		checked++
		return true, nil
	})
	assert.NoError(t, err)
	// Every 8-character candidate collided: a 10-character code is issued
	// without a further existence check.
	assert.Len(t, code, 10)
	assert.Equal(t, 5, checked)
	assert.False(t, strings.ContainsAny(code, "0O1I"))
}

func TestNewUniqueReferralCodePropagatesCheckError(t *testing.T) {
	_, err := NewUniqueReferralCode(func(string) (bool, error) {
		return false, assert.AnError
	})
	assert.Error(t, err)
}
