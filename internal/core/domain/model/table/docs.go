// Package table provides the domain entity for physical seating units.
//
// The package includes:
//   - DiningTable: An entity with a unique table number, seating capacity and occupancy status
//   - Status: The closed set of operational states (Available, Occupied, Dirty)
//
// Within the order lifecycle flows, table status changes only as a side effect
// of order activity: orders claim tables on placement or reassignment and
// release them when they no longer need the seat.
package table
