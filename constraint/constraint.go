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

// Package constraint parses and evaluates the textual constraint
// specifiers attached to dynamic route parameters (":int", ":range(0,100)",
// ":regex(...)", ...).
//
// A Constraint is parsed once from its textual form and evaluated many
// times against candidate path segments. Parsing is memoized through
// ParseCached so that two routes using the identical specifier string
// share one compiled Constraint.
package constraint

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is a single shared validator instance. go-playground/validator
// is safe for concurrent use once its custom tags (none, here) are
// registered, which happens before any Router starts serving.
var validate = validator.New()

// Kind identifies which predicate a Constraint evaluates.
type Kind uint8

const (
	// Unknown marks a constraint whose name was not recognized. Per
	// spec it is accepted at parse time but rejects every candidate at
	// match time, rather than failing registration.
	Unknown Kind = iota
	Int
	Bool
	DateTime
	Decimal
	Double
	Float
	GUID
	Long
	MinLength
	MaxLength
	Length
	Min
	Max
	Range
	Alpha
	Regex
	Required
)

var kindNames = map[string]Kind{
	"int":       Int,
	"bool":      Bool,
	"datetime":  DateTime,
	"decimal":   Decimal,
	"double":    Double,
	"float":     Float,
	"guid":      GUID,
	"long":      Long,
	"minlength": MinLength,
	"maxlength": MaxLength,
	"length":    Length,
	"min":       Min,
	"max":       Max,
	"range":     Range,
	"alpha":     Alpha,
	"regex":     Regex,
	"required":  Required,
}

// dateTimeLayout is the invariant-culture-equivalent layout used for the
// datetime constraint: RFC3339, which has no locale dependence.
const dateTimeLayout = "2006-01-02T15:04:05Z07:00"

// Constraint is a compiled, immutable predicate over a single path
// segment's raw text.
type Constraint struct {
	kind Kind
	raw  string // original textual specifier, e.g. "range(0,100)"; used as the tie-break/cache key

	arg1, arg2   string
	intArg1      int64
	intArg2      int64
	re           *regexp.Regexp // only set for Kind == Regex
}

// Kind reports which predicate this constraint evaluates.
func (c Constraint) Kind() Kind { return c.kind }

// Raw returns the original textual specifier this constraint was parsed
// from. Two constraints with equal Raw are considered the same
// constraint set for tree tie-break and dedup purposes.
func (c Constraint) Raw() string { return c.raw }

// Parse compiles a single constraint specifier such as "int",
// "range(0,100)", or "regex(^[a-z]+$)".
//
// Unknown constraint names are accepted (Kind() == Unknown, Evaluate
// always false) rather than rejected, matching spec's "unknown
// constraint name never raises at registration" rule. Malformed
// argument lists for recognized kinds (wrong arg count, non-integer
// bound) return an error that the caller should surface as a
// registration-time ConstraintFormatError.
func Parse(spec string) (Constraint, error) {
	spec = strings.TrimSpace(spec)
	name, argStr, hasArgs, err := splitNameArgs(spec)
	if err != nil {
		return Constraint{}, err
	}

	kind, known := kindNames[strings.ToLower(name)]
	if !known {
		return Constraint{kind: Unknown, raw: spec}, nil
	}

	c := Constraint{kind: kind, raw: spec}

	switch kind {
	case Int, Bool, DateTime, Decimal, Double, Float, GUID, Long, Alpha, Required:
		if hasArgs {
			return Constraint{}, newFormatError(spec, "does not take arguments")
		}
	case MinLength, MaxLength, Min, Max:
		if !hasArgs {
			return Constraint{}, newFormatError(spec, "requires one argument")
		}
		n, err := parseArgs(argStr, 1)
		if err != nil {
			return Constraint{}, newFormatError(spec, err.Error())
		}
		c.intArg1 = n[0]
	case Length:
		if !hasArgs {
			return Constraint{}, newFormatError(spec, "requires one or two arguments")
		}
		parts := splitTopLevelComma(argStr)
		switch len(parts) {
		case 1:
			n, err := parseArgs(parts[0], 1)
			if err != nil {
				return Constraint{}, newFormatError(spec, err.Error())
			}
			c.intArg1 = n[0]
			c.intArg2 = n[0]
		case 2:
			n, err := parseArgs(strings.Join(parts, ","), 2)
			if err != nil {
				return Constraint{}, newFormatError(spec, err.Error())
			}
			c.intArg1, c.intArg2 = n[0], n[1]
		default:
			return Constraint{}, newFormatError(spec, "requires one or two arguments")
		}
	case Range:
		if !hasArgs {
			return Constraint{}, newFormatError(spec, "requires two arguments")
		}
		n, err := parseArgs(argStr, 2)
		if err != nil {
			return Constraint{}, newFormatError(spec, err.Error())
		}
		c.intArg1, c.intArg2 = n[0], n[1]
	case Regex:
		if !hasArgs {
			return Constraint{}, newFormatError(spec, "requires a pattern")
		}
		// Malformed regex is not a registration error (spec: "malformed
		// regex -> false"); it simply never matches at evaluation time.
		c.arg1 = argStr
		if re, err := regexp.Compile(argStr); err == nil {
			c.re = re
		}
	}

	return c, nil
}

// splitNameArgs splits "name" or "name(args)" into the name and the
// raw argument text. For "regex(...)" the argument text is everything
// between the first '(' and the last ')', including embedded commas
// or parentheses, per spec.
func splitNameArgs(spec string) (name, args string, hasArgs bool, err error) {
	open := strings.IndexByte(spec, '(')
	if open < 0 {
		return spec, "", false, nil
	}
	if !strings.HasSuffix(spec, ")") {
		return "", "", false, newFormatError(spec, "unmatched '('")
	}
	name = spec[:open]
	args = spec[open+1 : len(spec)-1]
	return name, args, true, nil
}

// splitTopLevelComma splits on ',' without descending into nested
// parentheses (defensive; constraint arguments here are plain
// integers so nesting should not occur outside regex, which never
// reaches this function).
func splitTopLevelComma(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// parseArgs parses exactly want comma-separated integer arguments.
func parseArgs(s string, want int) ([]int64, error) {
	parts := splitTopLevelComma(s)
	if len(parts) != want {
		return nil, errArgCount(want, len(parts))
	}
	out := make([]int64, want)
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, errNotInteger(p)
		}
		out[i] = n
	}
	return out, nil
}

// Evaluate reports whether candidate satisfies this constraint. It
// never panics and never returns an error: an unrecognized kind, a
// malformed regex, or any other internal anomaly degrades to "does
// not match" rather than propagating.
func (c Constraint) Evaluate(candidate string) bool {
	switch c.kind {
	case Unknown:
		return false
	case Int:
		_, err := strconv.ParseInt(candidate, 10, 64)
		return err == nil
	case Long:
		_, err := strconv.ParseInt(candidate, 10, 64)
		return err == nil
	case Bool:
		return strings.EqualFold(candidate, "true") || strings.EqualFold(candidate, "false")
	case DateTime:
		return validate.Var(candidate, "datetime="+dateTimeLayout) == nil
	case Decimal, Double, Float:
		_, err := strconv.ParseFloat(candidate, 64)
		return err == nil
	case GUID:
		return isCanonicalGUID(candidate)
	case MinLength:
		return validate.Var(candidate, "min="+strconv.FormatInt(c.intArg1, 10)) == nil
	case MaxLength:
		return validate.Var(candidate, "max="+strconv.FormatInt(c.intArg1, 10)) == nil
	case Length:
		tag := "min=" + strconv.FormatInt(c.intArg1, 10) + ",max=" + strconv.FormatInt(c.intArg2, 10)
		return validate.Var(candidate, tag) == nil
	case Min:
		v, err := strconv.ParseInt(candidate, 10, 64)
		if err != nil {
			return false
		}
		return validate.Var(v, "min="+strconv.FormatInt(c.intArg1, 10)) == nil
	case Max:
		v, err := strconv.ParseInt(candidate, 10, 64)
		if err != nil {
			return false
		}
		return validate.Var(v, "max="+strconv.FormatInt(c.intArg1, 10)) == nil
	case Range:
		v, err := strconv.ParseInt(candidate, 10, 64)
		if err != nil {
			return false
		}
		tag := "min=" + strconv.FormatInt(c.intArg1, 10) + ",max=" + strconv.FormatInt(c.intArg2, 10)
		return validate.Var(v, tag) == nil
	case Alpha:
		return candidate != "" && validate.Var(candidate, "alpha") == nil
	case Regex:
		if c.re == nil {
			return false
		}
		return c.re.MatchString(candidate)
	case Required:
		return validate.Var(candidate, "required") == nil
	default:
		return false
	}
}

// isCanonicalGUID reports whether s is a canonical
// 8-4-4-4-12 hyphenated GUID.
func isCanonicalGUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// TypePriority returns the dynamic tie-break weight of a single
// constraint kind used by the tree's sibling ordering (spec §4.4):
// int=1, guid=2, long=3, anything else=10. The tree takes the minimum
// of these weights over one candidate's constraints, and treats a
// candidate with no constraints as infinite separately.
func TypePriority(kind Kind) int {
	switch kind {
	case Int:
		return 1
	case GUID:
		return 2
	case Long:
		return 3
	default:
		return 10
	}
}
