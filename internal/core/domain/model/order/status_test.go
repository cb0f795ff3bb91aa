package order_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allValidStatuses() []order.Status {
	return []order.Status{
		order.Pending,
		order.Dispatched,
		order.Delivered,
		order.Received,
		order.Returned,
		order.Cancelled,
	}
}

// allowedTransitions mirrors the fixed transition table the state machine
// must enforce. Pairs absent from this map must be rejected.
func allowedTransitions() map[order.Status][]order.Status {
	return map[order.Status][]order.Status{
		order.Pending:    {order.Dispatched, order.Cancelled},
		order.Dispatched: {order.Delivered},
		order.Delivered:  {order.Received, order.Returned},
		order.Received:   {order.Returned},
		order.Returned:   {},
		order.Cancelled:  {},
	}
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Dispatched))
		assert.Equal(t, 3, int(order.Delivered))
		assert.Equal(t, 4, int(order.Received))
		assert.Equal(t, 5, int(order.Returned))
		assert.Equal(t, 6, int(order.Cancelled))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := append([]order.Status{order.Unknown}, allValidStatuses()...)

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(7),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return lowercase API names", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "pending"},
			{order.Dispatched, "dispatched"},
			{order.Delivered, "delivered"},
			{order.Received, "received"},
			{order.Returned, "returned"},
			{order.Cancelled, "cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(-1).String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid statuses", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "Pending", "shipped", "DELIVERED"} {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				parsed, err := order.StatusFromString(input)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Equal(t, order.Unknown, parsed)
			})
		}
	})
}

func TestStatus_CanTransitionTo_FullGrid(t *testing.T) {
	allowed := allowedTransitions()

	for _, from := range allValidStatuses() {
		for _, to := range allValidStatuses() {
			expected := false
			for _, next := range allowed[from] {
				if next == to {
					expected = true
				}
			}

			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				assert.Equal(t, expected, from.CanTransitionTo(to))
			})
		}
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should perform every transition in the table", func(t *testing.T) {
		for from, targets := range allowedTransitions() {
			for _, to := range targets {
				result, err := from.TransitionTo(to)
				require.NoError(t, err)
				assert.Equal(t, to, result)
			}
		}
	})

	t.Run("should reject transitions outside the table with both states named", func(t *testing.T) {
		result, err := order.Delivered.TransitionTo(order.Dispatched)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Unknown, result)
		assert.Contains(t, err.Error(), "delivered")
		assert.Contains(t, err.Error(), "dispatched")
	})

	t.Run("should reject invalid target statuses", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)

		_, err = order.Pending.TransitionTo(order.Status(99))
		require.Error(t, err)
	})

	t.Run("should reject self transitions", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			_, err := status.TransitionTo(status)
			require.Error(t, err, "%s to itself should be rejected", status)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("returned and cancelled are terminal", func(t *testing.T) {
		assert.True(t, order.Returned.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("terminal statuses reach nothing", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Returned, order.Cancelled} {
			for _, target := range allValidStatuses() {
				assert.False(t, terminal.CanTransitionTo(target),
					"%s should not reach %s", terminal, target)
			}
		}
	})

	t.Run("non-terminal statuses are not terminal", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Dispatched, order.Delivered, order.Received} {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})

	t.Run("unknown is not terminal", func(t *testing.T) {
		assert.False(t, order.Unknown.IsTerminal())
	})
}
