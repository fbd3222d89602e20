package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := NewAppError(http.StatusInternalServerError, "query failed", cause)

	assert.Equal(t, "query failed: connection refused", appErr.Error())
	assert.ErrorIs(t, appErr, cause)
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(gorm.ErrRecordNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)))
	assert.True(t, IsNotFoundError(NotFoundError("customer not found", nil)))
	assert.False(t, IsNotFoundError(errors.New("boom")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, IsDuplicateKeyError(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKeyError(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, IsDuplicateKeyError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_coupons_code" (SQLSTATE 23505)`)))
	assert.False(t, IsDuplicateKeyError(errors.New("deadlock detected")))
	assert.False(t, IsDuplicateKeyError(nil))
}
