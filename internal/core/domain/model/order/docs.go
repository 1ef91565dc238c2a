// Package order contains the order aggregate and its fulfillment state machine.
//
// The aggregate owns the full lifecycle of a sale: from creation by dealer sales
// staff, through manager confirmation, manufacturer allocation, invoicing, and
// delivery. Every status change goes through a single authoritative transition
// table that binds each legal (from, to) edge to the role allowed to trigger it;
// no code path sets the status directly. Each applied transition appends an
// entry to the order's append-only audit log.
//
// Inventory side effects of transitions (reservation and transfer on allocation,
// the reverse movement on cancellation) are orchestrated by the application
// layer; this package only decides whether a transition is legal and who may
// perform it.
package order
