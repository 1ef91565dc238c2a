// Package delivery contains the Delivery aggregate: the handover of an order's
// vehicles to the customer. Each order has at most one delivery, created once
// stock has been allocated to the order. Dealer staff drive the delivery
// through its own small state machine (pending, in progress, delivered).
package delivery
