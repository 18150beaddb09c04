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

// Package router is a URL route matcher: given a registry of
// declarative patterns and a request path, it returns the single
// handler that best matches together with the extracted parameters.
//
// The grammar supports literal segments, typed dynamic parameters with
// constraints, optional segments, default values, and trailing
// wildcards and named catch-alls, both of which consume every remaining
// segment. Matching is
// deterministic and priority-aware; see the constraint, segment, and
// tree sub-packages for the parser, segment compiler, and routing tree
// that implement it.
package router

import (
	"strconv"
	"strings"
	"sync"

	"github.com/traverse-dev/router/constraint"
	"github.com/traverse-dev/router/segment"
	"github.com/traverse-dev/router/tree"
)

// Router owns the routing tree and the flat registry of routes. The
// zero value is not usable; construct with New.
type Router struct {
	mu sync.RWMutex

	tree        *tree.Tree
	routes      map[string]*Route
	controllers map[string]struct{}

	indexHandler any
	hasIndex     bool

	nextID uint64

	diagnostics DiagnosticHandler

	bloomEnabled        bool
	bloomExpectedRoutes int
	bloomHashFuncs      int
}

// New constructs an empty Router. The core must be instantiable
// multiple times in one process — there is no hidden process-wide
// singleton.
func New(opts ...Option) *Router {
	r := &Router{
		routes:      make(map[string]*Route),
		controllers: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.tree = tree.New()
	if r.bloomEnabled {
		r.tree.EnableBloomFilter(r.bloomExpectedRoutes, r.bloomHashFuncs)
	}

	return r
}

// RouteOption configures a single AddRoute call.
type RouteOption func(*routeConfig)

type routeConfig struct {
	priority int
	roles    any
}

// WithPriority sets the route's tie-break priority (default 0; higher
// wins).
func WithPriority(priority int) RouteOption {
	return func(c *routeConfig) { c.priority = priority }
}

// WithRoles attaches an opaque roles value, passed through to the
// caller unexamined — authorization is an external collaborator.
func WithRoles(roles any) RouteOption {
	return func(c *routeConfig) { c.roles = roles }
}

// AddRoute parses and compiles pattern, then inserts it (and every
// truncation its optional/default tail segments generate) into the
// tree. Parsing and compiling errors (PatternSyntaxError,
// StructuralError, ConstraintFormatError) leave the tree untouched and
// are returned to the caller; nothing is ever partially registered.
func (r *Router) AddRoute(pattern string, handler any, opts ...RouteOption) (string, error) {
	if strings.TrimSpace(pattern) == "" {
		return "", ErrEmptyPattern
	}
	if handler == nil {
		return "", ErrNilHandler
	}

	cfg := routeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	raw, err := segment.ParsePattern(pattern)
	if err != nil {
		return "", err
	}
	segs, err := segment.Compile(pattern, raw)
	if err != nil {
		return "", err
	}

	for _, s := range segs {
		for i, c := range s.Constraints {
			if c.Kind() == constraint.Unknown {
				r.emit(DiagUnknownConstraint, "unrecognized constraint name, route accepted but will never match on this parameter", map[string]any{
					"pattern":    pattern,
					"param":      s.Name,
					"constraint": s.ConstraintSpecs[i],
				})
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := "route-" + strconv.FormatUint(r.nextID, 10)

	route := &Route{
		ID:       id,
		Pattern:  pattern,
		Handler:  handler,
		Priority: cfg.priority,
		Roles:    cfg.roles,
		segments: segs,
	}
	r.routes[id] = route

	r.tree.Insert(segs, tree.Terminal{
		Handler:  handler,
		Priority: cfg.priority,
		RouteID:  id,
	})

	r.emitLocked(DiagRouteRegistered, "route registered", map[string]any{
		"pattern": pattern,
		"id":      id,
	})

	return id, nil
}

// AddController registers an implicit controller name for the
// single-segment "<name>/index" retry performed by Match.
func (r *Router) AddController(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ErrEmptyPattern
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.controllers[name]; exists {
		return ErrDuplicateController
	}
	r.controllers[name] = struct{}{}

	return nil
}

// SetIndexRoute sets the handler returned for an empty-path request.
// Passing nil clears it.
func (r *Router) SetIndexRoute(handler any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.indexHandler = handler
	r.hasIndex = handler != nil
}

// MatchResult reports the outcome of Match.
type MatchResult struct {
	IsMatch bool
	Route   *Route
	Params  map[string]string

	// BestPartial is the highest-priority routable route reached while
	// searching (the first one reached among equal priorities), for
	// diagnostic fallback UX only — never a real match.
	BestPartial *Route
}

// Match splits path on '/', drops empty segments, lower-cases them, and
// runs the matcher. An empty path returns the configured index route,
// if any. A single-segment path that cleanly misses (no best-partial)
// and names a registered controller retries against "<name>/index".
func (r *Router) Match(path string) MatchResult {
	segs := splitPath(path)

	if len(segs) == 0 {
		r.mu.RLock()
		handler, has := r.indexHandler, r.hasIndex
		r.mu.RUnlock()

		if has {
			return MatchResult{
				IsMatch: true,
				Route:   &Route{Pattern: "/", Handler: handler},
				Params:  map[string]string{},
			}
		}
		return MatchResult{Params: map[string]string{}}
	}

	r.mu.RLock()
	res := r.tree.Match(segs)
	r.mu.RUnlock()

	out := r.toRouterResult(res)
	if out.IsMatch {
		return out
	}

	if res.BestPartial != nil {
		r.emit(DiagBestPartialFallback, "clean miss with a reachable best-partial route", map[string]any{
			"route_id": res.BestPartial.RouteID,
		})
	}

	if res.BestPartial == nil && len(segs) == 1 {
		r.mu.RLock()
		_, isController := r.controllers[segs[0]]
		r.mu.RUnlock()

		if isController {
			retry := append(append(make([]string, 0, 2), segs...), "index")

			r.mu.RLock()
			res2 := r.tree.Match(retry)
			r.mu.RUnlock()

			if res2.IsMatch {
				r.emit(DiagControllerRetry, "controller index retry matched", map[string]any{
					"controller": segs[0],
				})
				return r.toRouterResult(res2)
			}
		}
	}

	return out
}

func (r *Router) toRouterResult(res tree.MatchResult) MatchResult {
	out := MatchResult{IsMatch: res.IsMatch, Params: res.Params}
	if out.Params == nil {
		out.Params = map[string]string{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if res.Route != nil {
		out.Route = r.routes[res.Route.RouteID]
	}
	if res.BestPartial != nil {
		out.BestPartial = r.routes[res.BestPartial.RouteID]
	}

	return out
}

// splitPath splits path on '/', drops empty segments, and lower-cases
// each one — the caller-side normalization the matcher's contract
// requires of its input.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}

	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, strings.ToLower(p))
	}

	return out
}

func (r *Router) emit(kind DiagnosticKind, message string, fields map[string]any) {
	if r.diagnostics == nil {
		return
	}
	r.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: message, Fields: fields})
}

// emitLocked is emit for call sites that already hold r.mu.
func (r *Router) emitLocked(kind DiagnosticKind, message string, fields map[string]any) {
	if r.diagnostics == nil {
		return
	}
	r.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: message, Fields: fields})
}
