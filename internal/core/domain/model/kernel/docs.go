// Package kernel contains shared value objects used across all domain models.
// These are building blocks with no business meaning of their own: identifiers
// and the validation plumbing aggregates rely on.
package kernel
