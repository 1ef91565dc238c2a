package payment_test

import (
	"testing"
	"time"

	"dealership/internal/core/domain/model/kernel"
	"dealership/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustActor(t *testing.T, role kernel.Role, name string) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(role, name)
	require.NoError(t, err)
	return actor
}

func newTestPayment(t *testing.T) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		payment.Deposit,
		kernel.Bank,
		5000,
		time.Now(),
	)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	t.Run("should create payment in pending status", func(t *testing.T) {
		p := newTestPayment(t)

		assert.Equal(t, payment.Pending, p.Status())
		assert.Equal(t, payment.Deposit, p.Kind())
		assert.Equal(t, kernel.Bank, p.Method())
		assert.Equal(t, int64(5000), p.Amount())
		assert.False(t, p.IsConfirmed())
	})

	t.Run("should reject non-positive amount", func(t *testing.T) {
		for _, amount := range []int64{0, -1} {
			_, err := payment.NewPayment(
				kernel.NewUUID(), kernel.NewUUID(),
				payment.Balance, kernel.Cash, amount, time.Now(),
			)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "amount is invalid")
		}
	})

	t.Run("should reject invalid kind", func(t *testing.T) {
		_, err := payment.NewPayment(
			kernel.NewUUID(), kernel.NewUUID(),
			payment.KindUnknown, kernel.Cash, 100, time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("should reject invalid method", func(t *testing.T) {
		_, err := payment.NewPayment(
			kernel.NewUUID(), kernel.NewUUID(),
			payment.Deposit, kernel.PaymentMethodUnknown, 100, time.Now(),
		)

		require.Error(t, err)
	})
}

func TestPayment_Transition(t *testing.T) {
	manager := func(t *testing.T) kernel.Actor { return mustActor(t, kernel.DealerManager, "Binh") }

	t.Run("should confirm a pending payment", func(t *testing.T) {
		p := newTestPayment(t)

		require.NoError(t, p.Transition(payment.Confirmed, manager(t)))

		assert.Equal(t, payment.Confirmed, p.Status())
		assert.True(t, p.IsConfirmed())
		assert.True(t, p.Status().IsTerminal())
	})

	t.Run("should fail a pending payment", func(t *testing.T) {
		p := newTestPayment(t)

		require.NoError(t, p.Transition(payment.Failed, manager(t)))

		assert.Equal(t, payment.Failed, p.Status())
		assert.False(t, p.IsConfirmed())
	})

	t.Run("should flip at most once", func(t *testing.T) {
		p := newTestPayment(t)
		require.NoError(t, p.Transition(payment.Confirmed, manager(t)))

		err := p.Transition(payment.Failed, manager(t))

		require.ErrorIs(t, err, payment.ErrInvalidTransition)
		assert.Equal(t, payment.Confirmed, p.Status())
	})

	t.Run("should reject non-manager roles", func(t *testing.T) {
		p := newTestPayment(t)

		for _, role := range []kernel.Role{kernel.DealerStaff, kernel.ManufacturerStaff} {
			err := p.Transition(payment.Confirmed, mustActor(t, role, "Lan"))

			require.ErrorIs(t, err, payment.ErrForbidden)
		}
		assert.Equal(t, payment.Pending, p.Status())
	})

	t.Run("should reject unconstructed actor", func(t *testing.T) {
		p := newTestPayment(t)

		err := p.Transition(payment.Confirmed, kernel.Actor{})

		require.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
	})
}

func TestRestorePayment(t *testing.T) {
	t.Run("should restore payment with status", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := payment.RestorePayment(
			id, kernel.NewUUID(),
			payment.Finance, kernel.Loan, 12000,
			payment.Confirmed, time.Now(),
		)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.IsConfirmed())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := payment.RestorePayment(
			kernel.NewUUID(), kernel.NewUUID(),
			payment.Deposit, kernel.Cash, 100,
			payment.Unknown, time.Now(),
		)

		require.Error(t, err)
	})
}

func TestKindFromString(t *testing.T) {
	t.Run("should round-trip every valid kind", func(t *testing.T) {
		for _, kind := range []payment.Kind{payment.Deposit, payment.Balance, payment.Finance} {
			parsed, err := payment.KindFromString(kind.String())

			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		}
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		_, err := payment.KindFromString("refund")
		require.Error(t, err)
	})
}
