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

// Package httpx adapts HTTP error responses into error envelopes.
//
// Backends and provider proxies answer failed calls with a JSON body in the
// envelope wire shape ({"code": ..., "details": ...}); the adapter feeds the
// decoded body to the classifier. Non-JSON bodies are treated as plain
// message text, and bodies that are empty or unusable degrade to an envelope
// derived from the HTTP status code alone. Like everything at this boundary
// the conversion is total.
package httpx

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"dirpx.dev/usererr"
)

// maxBodyBytes bounds how much of an error body is read. Error payloads are
// small; anything beyond this is noise.
const maxBodyBytes = 64 << 10

// FromResponse reads the response body and converts it into an envelope.
// The body is consumed but not closed; that stays with the caller.
//
// Responses with 2xx statuses are not errors and yield the generic unknown
// envelope — calling this on a success is a caller bug that must still not
// break the UI.
func FromResponse(resp *http.Response) usererr.Envelope {
	if resp == nil {
		return usererr.Unknown()
	}
	var body []byte
	if resp.Body != nil {
		body, _ = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	}
	return FromBody(resp.StatusCode, body)
}

// FromBody converts an HTTP status and raw error body into an envelope.
func FromBody(statusCode int, body []byte) usererr.Envelope {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err == nil && len(m) > 0 {
		return usererr.Classify(m)
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return usererr.NewMessage(statusCodeString(statusCode), text)
	}

	if code := statusCodeString(statusCode); code != "" {
		return usererr.Envelope{Code: code, Details: usererr.EmptyDetails{}}
	}
	return usererr.Unknown()
}

// statusCodeString maps an HTTP status onto an envelope code. Statuses
// without a specific mapping borrow the standard reason phrase, which the
// key normalization turns into a usable fragment ("Too Many Requests" is
// covered explicitly because its phrase does not round-trip cleanly).
func statusCodeString(statusCode int) string {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return usererr.CodeInvalidCredentials
	case http.StatusTooManyRequests:
		return "RateLimited"
	case http.StatusNotFound:
		return "NotFound"
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return "ServiceUnavailable"
	}
	if statusCode < 400 {
		return ""
	}
	return strings.ReplaceAll(http.StatusText(statusCode), " ", "")
}
