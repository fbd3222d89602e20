package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderAuditFieldsComeFromEmbedding(t *testing.T) {
	var order Order
	assert.True(t, order.CreatedAt.IsZero())
	assert.True(t, order.UpdatedAt.IsZero())
	assert.False(t, order.DeletedAt.Valid)

	var item OrderItem
	assert.True(t, item.CreatedAt.IsZero())

	var line CartItem
	assert.True(t, line.CreatedAt.IsZero())
}

func TestOrderStatusesAreDistinct(t *testing.T) {
	statuses := []string{
		OrderStatusPlaced,
		OrderStatusPaid,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
	seen := map[string]bool{}
	for _, status := range statuses {
		assert.NotEmpty(t, status)
		assert.False(t, seen[status], "duplicate status %q", status)
		seen[status] = true
	}
}
