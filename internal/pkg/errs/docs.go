// Package errs provides standardized error types for the restaurant services.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the application commands and the adapters.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a value falls outside an allowed range
//   - ObjectNotFoundError: an aggregate or entity cannot be found
//   - InvalidStatusTransitionError: a lifecycle transition is not in the transition table
//   - BusinessRuleViolationError: a domain rule forbids the operation
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is works against the sentinel
//
// Validation-class errors (required, invalid, out of range) are never retried by
// the message consumers; see IsValidation.
package errs
