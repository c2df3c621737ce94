// Package kernel provides the identifiers shared by the ordering domain.
//
// The package includes:
//   - SessionID: identifies one conversation, extracted from a Dialogflow context name
//   - OrderID: the numeric identifier the persistence layer allocates to a placed order
//
// Both are immutable value objects. Their zero values are invalid and fail
// Validate; build them through the provided constructors.
package kernel
