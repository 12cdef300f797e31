// Package errors provides structured errors for the rpg-tales service.
//
// Every error carries a Code that maps onto a gRPC status code, a message
// that is safe to show to players, an optional cause and optional metadata.
//
// # Basic Usage
//
//	err := errors.NotFound("room not found")
//	err := errors.InvalidArgumentf("roll must be between 1 and 20, got %d", roll)
//
// Adding metadata:
//
//	err := errors.NotFound("room not found").WithRoom(code)
//
// Wrapping keeps the code of a wrapped *Error and defaults to Internal:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load room")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("action", input.Action, vb)
//	errors.ValidateRange("roll", roll, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// # Layer Guidelines
//
// Repositories return NotFound, Aborted (version conflicts) and wrap storage
// failures as Internal. Orchestrators validate input (InvalidArgument), check
// room lifecycle (FailedPrecondition, PermissionDenied) and convert generator
// failures to Unavailable. Handlers only call ToGRPCError.
package errors
