// Package account provides the read-side domain types for actors and
// addresses. User management and address book CRUD are external collaborators;
// the order lifecycle engine consumes these types through reader ports to make
// ownership and authorization decisions.
package account
