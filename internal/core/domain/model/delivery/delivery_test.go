package delivery_test

import (
	"testing"
	"time"

	"dealership/internal/core/domain/model/delivery"
	"dealership/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustActor(t *testing.T, role kernel.Role, name string) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(role, name)
	require.NoError(t, err)
	return actor
}

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"12 Nguyen Trai, Hanoi",
		time.Now().Add(24*time.Hour),
		time.Now(),
	)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("should create delivery in pending status", func(t *testing.T) {
		d := newTestDelivery(t)

		assert.Equal(t, delivery.Pending, d.Status())
		assert.Equal(t, "12 Nguyen Trai, Hanoi", d.Address())
	})

	t.Run("should reject empty address", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), "", time.Now(), time.Now(),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address is required")
	})

	t.Run("should reject zero scheduled time", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), "addr", time.Time{}, time.Now(),
		)

		require.Error(t, err)
	})
}

func TestDelivery_Transition(t *testing.T) {
	staff := func(t *testing.T) kernel.Actor { return mustActor(t, kernel.DealerStaff, "Lan") }

	t.Run("should walk pending to delivered via in_progress", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Transition(delivery.InProgress, staff(t)))
		assert.Equal(t, delivery.InProgress, d.Status())

		require.NoError(t, d.Transition(delivery.Delivered, staff(t)))
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.True(t, d.Status().IsTerminal())
	})

	t.Run("should reject skipping in_progress", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.Transition(delivery.Delivered, staff(t))

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		assert.Equal(t, delivery.Pending, d.Status())
	})

	t.Run("should reject non-staff roles", func(t *testing.T) {
		d := newTestDelivery(t)

		for _, role := range []kernel.Role{kernel.DealerManager, kernel.ManufacturerStaff} {
			err := d.Transition(delivery.InProgress, mustActor(t, role, "Binh"))

			require.ErrorIs(t, err, delivery.ErrForbidden)

			var forbiddenErr *delivery.ForbiddenError
			require.ErrorAs(t, err, &forbiddenErr)
			assert.Equal(t, role, forbiddenErr.Role)
		}
		assert.Equal(t, delivery.Pending, d.Status())
	})

	t.Run("should reject moves out of delivered", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Transition(delivery.InProgress, staff(t)))
		require.NoError(t, d.Transition(delivery.Delivered, staff(t)))

		err := d.Transition(delivery.InProgress, staff(t))

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})

	t.Run("should reject unconstructed actor", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.Transition(delivery.InProgress, kernel.Actor{})

		require.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("should restore delivery with status", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := delivery.RestoreDelivery(
			id, kernel.NewUUID(), "addr", time.Now(), delivery.InProgress, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, delivery.InProgress, d.Status())
		assert.True(t, d.ID().IsEqual(id))
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), "addr", time.Now(), delivery.Unknown, time.Now(),
		)

		require.Error(t, err)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, status := range []delivery.Status{delivery.Pending, delivery.InProgress, delivery.Delivered} {
			parsed, err := delivery.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		_, err := delivery.StatusFromString("shipped")
		require.Error(t, err)
	})
}
