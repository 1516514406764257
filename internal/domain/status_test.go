package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"CREATED", "CONFIRMED", "DELIVERED", "CANCELLED"} {
		status, err := ParseOrderStatus(s)
		require.NoError(t, err)
		assert.Equal(t, OrderStatus(s), status)
	}

	for _, s := range []string{"", "created", "SHIPPED", "DONE"} {
		_, err := ParseOrderStatus(s)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "input %q", s)
		assert.Equal(t, "status", verr.Field)
	}
}
