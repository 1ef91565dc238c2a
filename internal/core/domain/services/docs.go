// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dealership system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Allocator: the all-or-nothing stock movement between owner pools shared
//     by the order fulfillment and vehicle request workflows
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
