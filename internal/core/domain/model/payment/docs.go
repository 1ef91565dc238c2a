// Package payment contains the Payment aggregate: a single instalment against
// an order (deposit, balance, or financed amount). Payments start pending and
// are flipped exactly once by the dealer manager to confirmed or failed.
// An order's outstanding debt is derived, never stored: order total minus the
// sum of confirmed payments.
package payment
