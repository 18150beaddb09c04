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

import (
	"errors"

	"github.com/traverse-dev/router/segment"
)

// Static errors for better error handling and testing. Wrap with
// fmt.Errorf and %w when positional context is needed.
var (
	// ErrEmptyPattern is returned by AddRoute for a blank pattern.
	ErrEmptyPattern = errors.New("router: pattern must not be empty")
	// ErrNilHandler is returned by AddRoute when handler is nil.
	ErrNilHandler = errors.New("router: handler must not be nil")
	// ErrDuplicateController is returned by AddController for a name
	// already registered.
	ErrDuplicateController = errors.New("router: controller already registered")
)

// PatternSyntaxError, StructuralError, and ConstraintFormatError are
// re-exported from the segment package under router-facing names so
// callers of this module never need to import segment directly to use
// errors.As. Each is its own distinct concrete type (segment.SyntaxError,
// segment.StructuralError, segment.ConstraintFormatError) — an
// errors.As against one never matches a value only the others could
// produce, and each implements Unwrap down to the sentinel (or, for
// ConstraintFormatError, the *constraint.FormatError) that caused it.
type (
	PatternSyntaxError    = segment.SyntaxError
	StructuralError       = segment.StructuralError
	ConstraintFormatError = segment.ConstraintFormatError
)
