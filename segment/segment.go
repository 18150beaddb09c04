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

// Package segment classifies the raw text produced by ParsePattern into
// typed route segments (static / dynamic / wildcard / catch-all) and
// enforces the structural invariants a route must satisfy before it can
// be inserted into a routing tree.
package segment

import (
	"strings"

	"github.com/traverse-dev/router/constraint"
)

// Kind discriminates the four segment variants a compiled route can be
// made of.
type Kind uint8

const (
	Static Kind = iota
	Dynamic
	Wildcard
	CatchAll
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Wildcard:
		return "wildcard"
	case CatchAll:
		return "catchall"
	default:
		return "unknown"
	}
}

// Segment is one compiled element of a route pattern.
type Segment struct {
	Kind Kind

	// Literal holds the lower-cased literal text for Static segments.
	Literal string

	// Name holds the lower-cased parameter name for Dynamic and
	// CatchAll segments.
	Name string

	// Constraints holds the compiled predicate list for Dynamic and
	// CatchAll segments, in declaration order.
	Constraints []constraint.Constraint

	// ConstraintSpecs holds the original textual specifiers backing
	// Constraints, in the same order. Two segments are the same
	// "constraint set" for tree discrimination and dedup purposes iff
	// these slices are equal element-wise.
	ConstraintSpecs []string

	// Optional marks a Dynamic segment as satisfiable by a truncation
	// that stops short of it. Always false for Static/Wildcard/CatchAll.
	Optional bool

	// Default holds the fallback value substituted for this segment when
	// the path's truncation stops before it reaches this segment. Only
	// meaningful when HasDefault is true; a segment with a default is
	// never Optional.
	Default    string
	HasDefault bool
}

// Compile converts the raw segment strings produced by ParsePattern into
// typed Segment values and enforces every structural invariant a route
// must satisfy: at most one Wildcard/CatchAll and only as the final
// segment, optional segments trailing all required ones, no segment
// combining "?" with "=", and a CatchAll that is both named and
// non-optional.
func Compile(pattern string, raw []string) ([]Segment, error) {
	segs := make([]Segment, 0, len(raw))

	for _, r := range raw {
		s, err := compileOne(pattern, r)
		if err != nil {
			return nil, err
		}
		segs = append(segs, s)
	}

	if err := validateStructure(pattern, segs); err != nil {
		return nil, err
	}

	return segs, nil
}

func compileOne(pattern, raw string) (Segment, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "*" {
		return Segment{Kind: Wildcard}, nil
	}

	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") && !isEscapedLiteral(trimmed) {
		return compileParam(pattern, trimmed[1:len(trimmed)-1])
	}

	return Segment{Kind: Static, Literal: strings.ToLower(unescapeLiteral(trimmed))}, nil
}

// isEscapedLiteral reports whether a segment that superficially looks
// brace-wrapped is actually an all-escaped literal such as "{{name}}",
// which the parser passes through verbatim with its doubled braces
// intact. A genuine parameter never begins with "{{" or ends with "}}"
// because the grammar's param form opens with exactly one brace.
func isEscapedLiteral(s string) bool {
	return strings.HasPrefix(s, "{{") || strings.HasSuffix(s, "}}")
}

func unescapeLiteral(s string) string {
	s = strings.ReplaceAll(s, "{{", "{")
	s = strings.ReplaceAll(s, "}}", "}")
	return s
}

// compileParam compiles the interior of a "{...}" segment (braces
// already stripped) into a Dynamic or CatchAll Segment.
func compileParam(pattern, interior string) (Segment, error) {
	parts := splitTopLevelColon(interior)
	if len(parts) == 0 || parts[0] == "" {
		return Segment{}, newSyntaxError(pattern, "parameter has an empty name", ErrEmptyParamName)
	}

	namePart := parts[0]
	constraintSpecs := parts[1:]

	optional := false
	if trimmed, ok := strings.CutSuffix(namePart, "?"); ok {
		namePart = trimmed
		optional = true
	}

	hasDefault := false
	def := ""
	if eq := strings.IndexByte(namePart, '='); eq >= 0 {
		hasDefault = true
		def = namePart[eq+1:]
		namePart = namePart[:eq]
	}

	if len(constraintSpecs) > 0 {
		last := constraintSpecs[len(constraintSpecs)-1]
		if trimmed, ok := strings.CutSuffix(last, "?"); ok {
			optional = true
			constraintSpecs[len(constraintSpecs)-1] = trimmed
		}
	}

	if optional && hasDefault {
		return Segment{}, newSyntaxError(pattern, "parameter combines '?' with a default value", ErrOptionalWithDefault)
	}

	isCatchAll := strings.HasPrefix(namePart, "**")
	if isCatchAll {
		namePart = namePart[2:]
	}

	if namePart == "" {
		return Segment{}, newSyntaxError(pattern, "parameter has an empty name", ErrEmptyParamName)
	}

	if isCatchAll && optional {
		return Segment{}, newStructuralError(pattern, "catch-all parameter cannot be optional", ErrCatchAllOptional)
	}

	cs := make([]constraint.Constraint, 0, len(constraintSpecs))
	specs := make([]string, 0, len(constraintSpecs))
	for _, spec := range constraintSpecs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		c, err := constraint.ParseCached(spec)
		if err != nil {
			return Segment{}, newConstraintFormatError(pattern, namePart, spec, err)
		}
		cs = append(cs, c)
		specs = append(specs, spec)
	}

	kind := Dynamic
	if isCatchAll {
		kind = CatchAll
	}

	return Segment{
		Kind:            kind,
		Name:            strings.ToLower(namePart),
		Constraints:     cs,
		ConstraintSpecs: specs,
		Optional:        optional,
		Default:         def,
		HasDefault:      hasDefault,
	}, nil
}

// splitTopLevelColon splits a parameter interior on ':' without
// descending into a constraint's own parentheses, so that
// "id:regex(a:b)" splits into ["id", "regex(a:b)"] rather than
// fragmenting the regex argument.
func splitTopLevelColon(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ':':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// validateStructure enforces the invariants that span the whole
// segment list rather than a single segment: wildcard/catch-all
// placement and count, and optional-after-required ordering.
func validateStructure(pattern string, segs []Segment) error {
	seenTerminal := false
	seenOptional := false

	for i, s := range segs {
		if seenTerminal {
			return newStructuralError(pattern, "wildcard or catch-all must be the final segment", ErrTerminalNotLast)
		}

		switch s.Kind {
		case Wildcard, CatchAll:
			seenTerminal = true
			if i != len(segs)-1 {
				return newStructuralError(pattern, "wildcard or catch-all must be the final segment", ErrTerminalNotLast)
			}
		case Dynamic:
			if s.Optional {
				seenOptional = true
			} else if seenOptional {
				return newStructuralError(pattern, "required parameter follows an optional one", ErrOptionalOrdering)
			}
		case Static:
			if seenOptional {
				return newStructuralError(pattern, "static segment follows an optional parameter", ErrOptionalOrdering)
			}
		}
	}

	return nil
}
