// Copyright 2026 The Traverse Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package router

// DiagnosticEvent is an informational event the router raises about its
// own operation — never an error, and never required for correctness.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagRouteRegistered fires once per successful AddRoute call.
	DiagRouteRegistered DiagnosticKind = "route_registered"
	// DiagBestPartialFallback fires when Match returns a clean miss but
	// a best-partial node was reached, which is useful for surfacing
	// "did you mean" diagnostics without ever treating it as a match.
	DiagBestPartialFallback DiagnosticKind = "best_partial_fallback"
	// DiagControllerRetry fires when the single-segment controller
	// retry (§4.6) resolves a request to "<name>/index".
	DiagControllerRetry DiagnosticKind = "controller_index_retry"
	// DiagUnknownConstraint fires once per unrecognized constraint name
	// encountered while compiling a route. The route is still accepted
	// (an unknown constraint rejects every candidate at match time
	// rather than failing registration), so this is informational only.
	DiagUnknownConstraint DiagnosticKind = "unknown_constraint"
)

// DiagnosticHandler receives diagnostic events. Implementations may log,
// emit metrics, trace, or ignore them entirely — the router's matching
// behavior is unaffected either way. This is deliberately not a logging
// dependency: callers that want logs wire a DiagnosticHandlerFunc that
// calls into their own logger.
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc adapts a plain function to DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) { f(e) }
