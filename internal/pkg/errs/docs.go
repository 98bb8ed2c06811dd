// Package errs provides standardized error types for the order book
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the application's failure classes:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value falls outside its allowed range
//   - ObjectNotFoundError: for when an object cannot be found
//   - StoreUnavailableError: for when the backing order store is unreachable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//
// HTTP and CLI surfaces rely on this classification to map failures to
// status codes; persistence adapters rely on StoreUnavailableError to report
// unreachable backends without fabricating success.
package errs
