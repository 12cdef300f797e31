package errors

import "google.golang.org/grpc/codes"

// Code classifies an Error. Each code has exactly one gRPC status code.
type Code string

// Codes used by the game service
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeAborted            Code = "ABORTED"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"
)

var toGRPC = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodePermissionDenied:   codes.PermissionDenied,
	CodeResourceExhausted:  codes.ResourceExhausted,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeAborted:            codes.Aborted,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
	CodeUnauthenticated:    codes.Unauthenticated,
}

var fromGRPC = func() map[codes.Code]Code {
	out := make(map[codes.Code]Code, len(toGRPC))
	for c, g := range toGRPC {
		out[g] = c
	}
	return out
}()

func (c Code) String() string {
	return string(c)
}

// GRPCCode maps c to its gRPC status code. Unknown codes map to Unknown.
func (c Code) GRPCCode() codes.Code {
	if g, ok := toGRPC[c]; ok {
		return g
	}
	return codes.Unknown
}

// Retryable reports whether sending the same call again may succeed
func (c Code) Retryable() bool {
	switch c {
	case CodeUnavailable, CodeAborted, CodeDeadlineExceeded, CodeResourceExhausted:
		return true
	default:
		return false
	}
}

func grpcCodeToCode(g codes.Code) Code {
	if c, ok := fromGRPC[g]; ok {
		return c
	}
	return CodeInternal
}
