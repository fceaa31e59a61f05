// ============================================================================
// eiya - Pattern Based Date Engine
// ============================================================================
//
// Package:     grpc
// Description: Translation between eiya error codes and gRPC status errors
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package grpc

import (
	"fmt"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain identifies eiya errors in ErrorInfo details
const ErrorDomain = "eiya"

// StatusCode maps an eiya error code to a gRPC status code
func StatusCode(code eiyaerror.Code) codes.Code {
	switch code {
	case eiyaerror.CodeInvalidInput, eiyaerror.CodeInvalidPattern, eiyaerror.CodePatternMismatch,
		eiyaerror.CodeInvalidDate, eiyaerror.CodeInvalidPrecision, eiyaerror.CodeInvalidLocale,
		eiyaerror.CodeInvalidOption, eiyaerror.CodeFieldConflict:
		return codes.InvalidArgument
	case eiyaerror.CodeNotFound:
		return codes.NotFound
	case eiyaerror.CodeConfigError, eiyaerror.CodeServiceInitialization:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

// ToStatus converts err into a status error. An *eiyaerror.Error keeps its
// code and details in an ErrorInfo; status errors pass through.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := eiyaerror.GetCode(err)
	st := status.New(StatusCode(code), err.Error())

	info := &errdetails.ErrorInfo{
		Reason:   code.String(),
		Domain:   ErrorDomain,
		Metadata: map[string]string{},
	}
	if e, ok := err.(*eiyaerror.Error); ok {
		for k, v := range e.Details() {
			info.Metadata[k] = fmt.Sprint(v)
		}
		if e.Operation() != "" {
			info.Metadata["operation"] = e.Operation()
		}
	}

	if detailed, derr := st.WithDetails(info); derr == nil {
		st = detailed
	}
	return st.Err()
}

// FromStatus converts a status error back into an *eiyaerror.Error with
// the code found in its ErrorInfo. Errors without one map to CodeInternal
// or, for transport failures, CodeServiceInitialization.
func FromStatus(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		e := eiyaerror.New(st.Message()).WithCode(eiyaerror.Code(info.GetReason()))
		for k, v := range info.GetMetadata() {
			if k == "operation" {
				e.WithOperation(v)
				continue
			}
			e.WithDetail(k, v)
		}
		return e
	}

	code := eiyaerror.CodeInternal
	if st.Code() == codes.Unavailable || st.Code() == codes.DeadlineExceeded {
		code = eiyaerror.CodeServiceInitialization
	}
	return eiyaerror.Wrap(err, "remote call failed").WithCode(code)
}
