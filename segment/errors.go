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

package segment

import (
	"errors"
	"fmt"
)

// Static sentinel errors for better error handling and testing. Each is
// wrapped by one of the concrete error types below so callers can
// errors.Is against the sentinel while Error() still carries positional
// detail (the offending pattern, parameter, or reason).
var (
	ErrUnmatchedBrace      = errors.New("segment: unmatched brace")
	ErrEmptyParamName      = errors.New("segment: parameter has an empty name")
	ErrOptionalWithDefault = errors.New("segment: parameter combines '?' with a default value")
	ErrCatchAllOptional    = errors.New("segment: catch-all parameter cannot be optional")
	ErrTerminalNotLast     = errors.New("segment: wildcard or catch-all must be the final segment")
	ErrOptionalOrdering    = errors.New("segment: optional segments must follow all required segments")
)

// SyntaxError reports a lexical defect in a pattern string: unmatched
// braces, an empty parameter name, or a malformed '?'/'=' combination.
// Raised at registration; never surfaced at match time.
type SyntaxError struct {
	Pattern string
	Reason  string
	err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("segment: invalid pattern %q: %s", e.Pattern, e.Reason)
}

// Unwrap exposes the sentinel this SyntaxError was raised for, so
// callers can errors.Is(err, segment.ErrUnmatchedBrace) without parsing
// Reason.
func (e *SyntaxError) Unwrap() error { return e.err }

func newSyntaxError(pattern, reason string, sentinel error) error {
	return &SyntaxError{Pattern: pattern, Reason: reason, err: sentinel}
}

// StructuralError reports a pattern that lexes cleanly but violates an
// ordering or placement invariant: optional before required, a
// wildcard/catch-all that isn't the final segment, more than one
// wildcard/catch-all, or an optional catch-all.
type StructuralError struct {
	Pattern string
	Reason  string
	err     error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("segment: structurally invalid pattern %q: %s", e.Pattern, e.Reason)
}

// Unwrap exposes the sentinel this StructuralError was raised for.
func (e *StructuralError) Unwrap() error { return e.err }

func newStructuralError(pattern, reason string, sentinel error) error {
	return &StructuralError{Pattern: pattern, Reason: reason, err: sentinel}
}

// ConstraintFormatError reports an unparseable constraint specifier
// encountered while compiling a dynamic or catch-all segment's
// constraint list. Unlike SyntaxError and StructuralError it always
// wraps a real cause — the *constraint.FormatError that
// constraint.ParseCached returned — so errors.Is/errors.As reach
// straight through to the constraint package's own sentinels
// (constraint.ErrBadArgCount, constraint.ErrArgNotInteger, ...) instead
// of that context being lost to a re-stringified Reason.
type ConstraintFormatError struct {
	Pattern string
	Param   string
	Spec    string
	err     error
}

func (e *ConstraintFormatError) Error() string {
	return fmt.Sprintf("segment: invalid pattern %q: parameter %q: %s", e.Pattern, e.Param, e.err)
}

// Unwrap exposes the underlying *constraint.FormatError.
func (e *ConstraintFormatError) Unwrap() error { return e.err }

func newConstraintFormatError(pattern, param, spec string, cause error) error {
	return &ConstraintFormatError{Pattern: pattern, Param: param, Spec: spec, err: cause}
}
