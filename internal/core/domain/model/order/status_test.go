package order_test

import (
	"testing"
	"time"

	"orderboard/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderboard/internal/pkg/errs"
)

func TestParseStatus(t *testing.T) {
	t.Run("accepts every enumeration member", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.ParseStatus(string(s))
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, raw := range []string{"", "shipped", "PREPARING", "done"} {
			_, err := order.ParseStatus(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.Baking.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
}

func TestStatus_AdvancedBy(t *testing.T) {
	tests := []struct {
		name    string
		current order.Status
		elapsed time.Duration
		want    order.Status
	}{
		{"fresh order stays preparing", order.Preparing, 4 * time.Minute, order.Preparing},
		{"preparing moves to baking after 5 minutes", order.Preparing, 6 * time.Minute, order.Baking},
		{"baking holds before 10 minutes", order.Baking, 9 * time.Minute, order.Baking},
		{"baking moves out for delivery after 10 minutes", order.Baking, 11 * time.Minute, order.OutForDelivery},
		{"preparing jumps straight out for delivery after 10 minutes", order.Preparing, 11 * time.Minute, order.OutForDelivery},
		{"out for delivery holds before 20 minutes", order.OutForDelivery, 19 * time.Minute, order.OutForDelivery},
		{"anything is delivered after 20 minutes", order.Preparing, 21 * time.Minute, order.Delivered},
		{"out for delivery is delivered after 20 minutes", order.OutForDelivery, 21 * time.Minute, order.Delivered},
		{"boundary at exactly 5 minutes", order.Preparing, 5 * time.Minute, order.Baking},
		{"boundary at exactly 10 minutes", order.Baking, 10 * time.Minute, order.OutForDelivery},
		{"boundary at exactly 20 minutes", order.Baking, 20 * time.Minute, order.Delivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.current.AdvancedBy(tt.elapsed))
		})
	}
}
