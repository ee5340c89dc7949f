// Package errors provides the structured error handling used across
// the odds service:
//   - Errors with codes, messages, and metadata
//   - HTTP status mapping for the JSON API
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("sides must be at least 2, got %d", sides)
//	err := errors.Canceled("distribution build canceled")
//
// Adding metadata:
//
//	err := errors.InvalidArgument("dice count out of range").
//	    WithMeta("dice_count", diceCount)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load cached distribution")
//	}
//
// # Error Checking
//
//	if errors.IsCanceled(err) {
//	    // keep the previous result; not a failure
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("dice_count", input.DiceCount, 1, 100, vb)
//	errors.ValidateRange("sides", input.Sides, 2, 100, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer Guidelines
//
// Engine: raise InvalidArgument before any computation starts, Canceled
// when the caller's context is done; never both a partial result and an
// error.
//
// Orchestrator: validate practical bounds with the builder, wrap
// repository errors with business context, treat Canceled as expected.
//
// Handlers: convert with ToHTTP, log internal errors, never log
// Canceled as an error.
package errors
