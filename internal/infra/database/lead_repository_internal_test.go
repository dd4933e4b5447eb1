package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingOrdersByInsertionSequence(t *testing.T) {
	// created_at can collide; only the seq column gives exact creation order.
	assert.Equal(t, " ORDER BY seq", leadInsertionOrder)
	assert.NotContains(t, leadInsertionOrder, "created_at")
	assert.True(t, strings.Contains(selectLeadColumns+leadInsertionOrder, "ORDER BY seq"))
}
