// Package order provides the domain model of a food order.
//
// The package includes:
//   - Cart: the in-progress order of one conversation, item name to quantity
//   - Line: one item and its quantity
//   - Status: the tracking status of a placed order
//
// Key business rules:
//   - A Cart keeps items in the order they were first added
//   - Adding an item that is already in the Cart overwrites its quantity
//   - Removing an item that is not in the Cart is reported, not an error
//   - Placed orders start in the "in progress" status
package order
