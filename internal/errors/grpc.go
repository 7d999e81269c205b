package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

// ErrorDomain identifies the service in errdetails.ErrorInfo payloads
const ErrorDomain = "companion.anyventure"

// ToGRPCError converts an error to a gRPC status error.
// Metadata travels as an errdetails.ErrorInfo with the code as reason.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codeForCause(err).GRPCCode(), err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) > 0 {
		info := &errdetails.ErrorInfo{
			Reason:   customErr.Code.String(),
			Domain:   ErrorDomain,
			Metadata: stringifyMeta(customErr.Meta),
		}
		if withDetails, detailErr := st.WithDetails(info); detailErr == nil {
			st = withDetails
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Proto().GetDetails() {
		if info, ok := errorInfo(detail); ok {
			for k, v := range info.GetMetadata() {
				customErr.WithMeta(k, v)
			}
			break
		}
	}

	return customErr
}

// errorInfo unpacks an ErrorInfo detail from this service's domain
func errorInfo(detail *anypb.Any) (*errdetails.ErrorInfo, bool) {
	info := &errdetails.ErrorInfo{}
	if !detail.MessageIs(info) {
		return nil, false
	}
	if err := detail.UnmarshalTo(info); err != nil {
		return nil, false
	}
	return info, info.GetDomain() == ErrorDomain
}

func stringifyMeta(meta map[string]any) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		out[k] = fmt.Sprint(v)
	}
	return out
}
