package errors

import (
	"fmt"
	"sort"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorDomain identifies errors produced by this service in ErrorInfo details
const errorDomain = "rpg-tales"

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)

	info := &errdetails.ErrorInfo{
		Reason: string(customErr.Code),
		Domain: errorDomain,
	}
	var badRequest *errdetails.BadRequest
	for k, v := range customErr.Meta {
		if fields, ok := v.(map[string][]string); ok && k == metaValidationErrors {
			badRequest = toBadRequest(fields)
			continue
		}
		if info.Metadata == nil {
			info.Metadata = make(map[string]string)
		}
		info.Metadata[k] = fmt.Sprint(v)
	}

	withDetails, detailErr := st.WithDetails(info)
	if detailErr == nil {
		st = withDetails
	}
	if badRequest != nil {
		if withBadRequest, detailErr := st.WithDetails(badRequest); detailErr == nil {
			st = withBadRequest
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error back to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			if d.GetDomain() != errorDomain {
				continue
			}
			if d.GetReason() != "" {
				customErr.Code = Code(d.GetReason())
			}
			for k, v := range d.GetMetadata() {
				customErr.WithMeta(k, v)
			}
		case *errdetails.BadRequest:
			fields := make(map[string][]string)
			for _, violation := range d.GetFieldViolations() {
				fields[violation.GetField()] = append(fields[violation.GetField()], violation.GetDescription())
			}
			customErr.WithMeta(metaValidationErrors, fields)
		}
	}

	return customErr
}

func toBadRequest(fields map[string][]string) *errdetails.BadRequest {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	br := &errdetails.BadRequest{}
	for _, name := range names {
		for _, msg := range fields[name] {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       name,
				Description: msg,
			})
		}
	}
	return br
}
