package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// memoryReferralCodes backs a referralCodeStore with maps so allocation rules
// run against deterministic state.
type memoryReferralCodes struct {
	byCustomer map[uint]string
	taken      map[string]bool
	inserts    int
}

func newMemoryReferralCodes() *memoryReferralCodes {
	return &memoryReferralCodes{
		byCustomer: map[uint]string{},
		taken:      map[string]bool{},
	}
}

func (m *memoryReferralCodes) store() referralCodeStore {
	return referralCodeStore{
		forCustomer: func(customerID uint) (string, bool, error) {
			code, found := m.byCustomer[customerID]
			return code, found, nil
		},
		codeTaken: func(code string) (bool, error) {
			return m.taken[code], nil
		},
		insert: func(customerID uint, code string) error {
			m.inserts++
			if m.taken[code] {
				return gorm.ErrDuplicatedKey
			}
			m.byCustomer[customerID] = code
			m.taken[code] = true
			return nil
		},
	}
}

func TestAllocateReferralCodeIsIdempotent(t *testing.T) {
	codes := newMemoryReferralCodes()

	first, err := allocateReferralCode(codes.store(), 7)
	assert.NoError(t, err)
	assert.Len(t, first, 8)

	second, err := allocateReferralCode(codes.store(), 7)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, codes.inserts, "an existing code must never be regenerated")
}

func TestAllocateReferralCodeReturnsConcurrentWinner(t *testing.T) {
	codes := newMemoryReferralCodes()
	store := codes.store()

	// A concurrent signup wins the insert race: the duplicate key resolves to
	// the row that request created.
	store.insert = func(customerID uint, code string) error {
		codes.byCustomer[customerID] = "RACEWON8"
		return gorm.ErrDuplicatedKey
	}

	code, err := allocateReferralCode(store, 9)
	assert.NoError(t, err)
	assert.Equal(t, "RACEWON8", code)
}

func TestAllocateReferralCodeGivesUpAfterRepeatedCollisions(t *testing.T) {
	codes := newMemoryReferralCodes()
	store := codes.store()

	store.insert = func(customerID uint, code string) error {
		return gorm.ErrDuplicatedKey
	}

	_, err := allocateReferralCode(store, 11)
	assert.Error(t, err)
}
