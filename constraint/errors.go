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

package constraint

import (
	"errors"
	"fmt"
	"strings"
)

// Static errors for better error handling and testing. Wrap with
// fmt.Errorf and %w when positional context is needed; callers use
// errors.Is against these.
var (
	ErrUnmatchedParen = errors.New("constraint: unmatched '('")
	ErrBadArgCount    = errors.New("constraint: wrong number of arguments")
	ErrArgNotInteger  = errors.New("constraint: argument is not an integer")
	ErrTakesNoArgs    = errors.New("constraint: does not take arguments")
	ErrMissingArgs    = errors.New("constraint: missing required arguments")
)

// FormatError reports a constraint specifier that could not be parsed.
// It wraps one of the sentinel errors above so callers can use
// errors.Is while still getting the offending specifier in Error().
type FormatError struct {
	Spec   string
	Reason string
	err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("constraint: invalid specifier %q: %s", e.Spec, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.err }

func newFormatError(spec, reason string) error {
	var err error
	switch {
	case strings.Contains(reason, "unmatched"):
		err = ErrUnmatchedParen
	case strings.Contains(reason, "does not take"):
		err = ErrTakesNoArgs
	case strings.Contains(reason, "not an integer"):
		err = ErrArgNotInteger
	case strings.Contains(reason, "requires"):
		err = ErrMissingArgs
	default:
		err = ErrBadArgCount
	}
	return &FormatError{Spec: spec, Reason: reason, err: err}
}

func errArgCount(want, got int) error {
	return fmt.Errorf("%w: want %d, got %d", ErrBadArgCount, want, got)
}

func errNotInteger(s string) error {
	return fmt.Errorf("%w: %q", ErrArgNotInteger, s)
}
