// Package errs provides the typed errors shared by the ordering webhook.
//
// The package includes:
//   - ValueIsRequiredError: a required value (session id, intent name) is missing
//   - ValueIsInvalidError: a value failed validation (order id, quantity)
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds (shop hours)
//   - ObjectNotFoundError: a lookup found nothing (order status, menu item)
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) returned by Unwrap
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//
// Callers classify errors with errors.Is against the sentinels and
// errors.As against the struct types.
package errs
