package order_test

import (
	"fmt"
	"testing"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 6, int(order.Delivered))
	})

	t.Run("should list statuses in lifecycle order", func(t *testing.T) {
		assert.Equal(t,
			[]order.Status{order.Pending, order.PickedUp, order.Washing, order.Drying, order.Completed, order.Delivered},
			order.Statuses())
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "pending"},
		{order.PickedUp, "picked_up"},
		{order.Washing, "washing"},
		{order.Drying, "drying"},
		{order.Completed, "completed"},
		{order.Delivered, "delivered"},
		{order.Unknown, "unknown"},
		{order.Status(42), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every valid status", func(t *testing.T) {
		for _, status := range order.Statuses() {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := order.ParseStatus("Washing")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})

	t.Run("should reject booking statuses", func(t *testing.T) {
		for _, literal := range []string{"confirmed", "in_progress", "cancelled", "", "unknown"} {
			_, err := order.ParseStatus(literal)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, literal)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		require.NoError(t, status.Validate())
	}

	err := order.Unknown.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0 is not a valid status")
	require.Error(t, order.Status(-1).Validate())
	require.Error(t, order.Status(7).Validate())
}

func TestStatus_Next(t *testing.T) {
	t.Run("should follow the fixed successor table", func(t *testing.T) {
		testCases := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Pending, order.PickedUp},
			{order.PickedUp, order.Washing},
			{order.Washing, order.Drying},
			{order.Drying, order.Completed},
			{order.Completed, order.Delivered},
		}

		for _, tc := range testCases {
			t.Run(tc.from.String(), func(t *testing.T) {
				next, err := tc.from.Next()

				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
				assert.True(t, tc.from.HasNext())
			})
		}
	})

	t.Run("delivered has no successor", func(t *testing.T) {
		next, err := order.Delivered.Next()

		require.Error(t, err)
		assert.Equal(t, order.Unknown, next)
		assert.False(t, order.Delivered.HasNext())
		assert.Contains(t, err.Error(), "delivered has no next status")
	})

	t.Run("unknown has no successor", func(t *testing.T) {
		_, err := order.Unknown.Next()

		require.Error(t, err)
	})
}

func TestStatus_Labels(t *testing.T) {
	assert.Equal(t, "Picked Up", order.PickedUp.Label())
	assert.Equal(t, "Pending", order.Status(99).Label())
	assert.Equal(t, "Start Washing", order.Washing.ActionLabel())
	assert.Equal(t, "Mark as Delivered", order.Delivered.ActionLabel())
	assert.Empty(t, order.Pending.ActionLabel())
}

func TestStatus_IsOngoing(t *testing.T) {
	ongoing := map[order.Status]bool{
		order.Pending:   false,
		order.PickedUp:  true,
		order.Washing:   true,
		order.Drying:    true,
		order.Completed: false,
		order.Delivered: false,
	}
	for status, expected := range ongoing {
		assert.Equal(t, expected, status.IsOngoing(), status.String())
	}
}

func TestWashAndPickupTypes(t *testing.T) {
	w, err := order.ParseWashType("stain_warm")
	require.NoError(t, err)
	assert.Equal(t, order.StainWarm, w)

	w, err = order.ParseWashType("")
	require.NoError(t, err)
	assert.Equal(t, order.Normal, w)

	_, err = order.ParseWashType("hot")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	p, err := order.ParsePickupType("self_drop")
	require.NoError(t, err)
	assert.Equal(t, "self_drop", p.String())

	_, err = order.ParsePickupType("")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, order.UnknownPickupType.Validate())
}
