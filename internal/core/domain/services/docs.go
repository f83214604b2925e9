// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the restaurant system. It implements
// business rules that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - BillMerger: folds same-sitting orders into one billing unit on delivery
//   - CancellationPolicy: decides who may cancel which order, and when
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
