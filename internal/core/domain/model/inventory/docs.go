// Package inventory contains the inventory ledger: per (variant, color, owner)
// stock records with quantity-on-hand and quantity-reserved counts.
//
// A record's invariant is 0 <= reserved <= quantity at all times; available
// stock is quantity minus reserved. Records are mutated only through the
// Reserve, Release, TransferOut, and TransferIn operations, never directly.
// The Allocator domain service composes these operations into the all-or-nothing
// allocation contract shared by the order and vehicle-request workflows.
package inventory
