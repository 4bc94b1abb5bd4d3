/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package grpcx adapts gRPC transport failures into error envelopes.
//
// The backend RPC layer attaches structured detail to its statuses using the
// standard google.rpc detail messages:
//
//   - errdetails.ErrorInfo carries the provider vocabulary: Domain is the
//     provider id, Reason the provider error code, Metadata the pass-through
//     template parameters;
//   - errdetails.BadRequest carries field-level credential validation
//     violations.
//
// FromError is total in the same sense as the classifier: any error value,
// gRPC-shaped or not, yields a usable envelope.
package grpcx

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"dirpx.dev/usererr"
	"dirpx.dev/usererr/field"
)

// Violation reason codes used by the backend's BadRequest details. Matched
// exactly, like every other sentinel at this boundary.
const (
	ReasonCredentialMissing = "CREDENTIAL_MISSING"
	ReasonCredentialEmpty   = "CREDENTIAL_EMPTY"
)

// FromError converts a gRPC error into an envelope.
//
// Detail messages take precedence over the bare status: an ErrorInfo with
// both domain and reason becomes a provider envelope, a BadRequest with
// violations becomes a field-validation envelope for its first violation
// (use FieldErrors for the full set). Without usable details the status code
// itself becomes the envelope code, with codes.Unauthenticated mapped onto
// the credential sentinel.
func FromError(err error) usererr.Envelope {
	if err == nil {
		return usererr.Unknown()
	}
	st, ok := status.FromError(err)
	if !ok {
		return usererr.Classify(err)
	}

	for _, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.ErrorInfo:
			if d.GetDomain() == "" || d.GetReason() == "" {
				continue
			}
			pd := usererr.ProviderDetails{
				Provider:   d.GetDomain(),
				Code:       d.GetReason(),
				RawMessage: st.Message(),
			}
			if md := d.GetMetadata(); len(md) > 0 {
				pd.Extra = make(map[string]any, len(md))
				for k, v := range md {
					pd.Extra[k] = v
				}
			}
			return usererr.NewProvider(pd)

		case *errdetails.BadRequest:
			for _, v := range d.GetFieldViolations() {
				return usererr.NewField(violationError(v))
			}
		}
	}

	if st.Code() == codes.Unauthenticated {
		return usererr.Envelope{
			Code:    usererr.CodeInvalidCredentials,
			Details: messageOrEmpty(st.Message()),
		}
	}
	return usererr.Envelope{
		Code:    st.Code().String(),
		Details: messageOrEmpty(st.Message()),
	}
}

// FieldErrors extracts every field violation from a gRPC error, keyed by the
// violation's field path. Form callers associate these with their inputs;
// an error without BadRequest details yields nil.
func FieldErrors(err error) map[string]field.Error {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	var out map[string]field.Error
	for _, d := range st.Details() {
		br, ok := d.(*errdetails.BadRequest)
		if !ok {
			continue
		}
		for _, v := range br.GetFieldViolations() {
			if out == nil {
				out = make(map[string]field.Error)
			}
			out[v.GetField()] = violationError(v)
		}
	}
	return out
}

// violationError maps one BadRequest violation onto the closed field error
// set via the backend's violation reason codes.
func violationError(v *errdetails.BadRequest_FieldViolation) field.Error {
	switch v.GetReason() {
	case ReasonCredentialMissing:
		return field.Missing{Label: v.GetField()}
	case ReasonCredentialEmpty:
		return field.Empty{Label: v.GetField()}
	default:
		return field.InvalidFormat{Label: v.GetField(), Reason: v.GetDescription()}
	}
}

// messageOrEmpty keeps status text when present so the resolver can fall
// back to it verbatim, and degrades to a code-only payload otherwise.
func messageOrEmpty(msg string) usererr.Details {
	if msg == "" {
		return usererr.EmptyDetails{}
	}
	return usererr.MessageDetails{Text: msg}
}
