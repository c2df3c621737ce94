// Package services provides domain services of the ordering webhook that do
// not belong to a single entity.
//
// The package includes:
//   - BusinessHours: the gate deciding whether the shop takes requests at a given instant
package services
