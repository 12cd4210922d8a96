// Package errors provides the coded error type used across the library API.
//
// Every layer returns *Error values (or wraps foreign errors into them) so
// the transport can map failures onto gRPC status codes without inspecting
// messages:
//
//	err := errors.NotFoundf("class %s not found", name).
//	    WithMeta("kind", "class").
//	    WithMeta("name", name)
//
// Repositories wrap storage failures with context:
//
//	if err := pipe.Exec(ctx); err != nil {
//	    return nil, errors.Wrapf(err, "failed to insert %s batch", kind)
//	}
//
// Wrap keeps the code of an existing *Error and maps context cancellation
// and deadlines to Canceled and DeadlineExceeded; any other foreign error
// becomes Internal.
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    ...
//	}
//
// Catalog and configuration checks collect every problem before failing:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("level", entry.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Handlers convert with ToGRPCError; metadata is attached to the status as a
// google.protobuf.Struct detail and restored by FromGRPCError.
package errors
