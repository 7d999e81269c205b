// Package errors provides the structured error type shared by every layer of
// the companion API.
//
// Errors carry a Code, a user-facing message, an optional cause and
// metadata. Repositories return domain codes (NotFound, AlreadyExists),
// orchestrators add InvalidArgument and FailedPrecondition, and handlers
// convert to gRPC status with ToGRPCError:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrapf(err, "failed to get spell %s", id)
//	}
//
// Wrap keeps the code of a wrapped *Error, so a NotFound from the storage
// layer still surfaces as codes.NotFound at the transport edge.
//
// Field validation accumulates through a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("spell_id", input.SpellID, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
