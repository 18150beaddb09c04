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

import "github.com/traverse-dev/router/segment"

// Route is a registered pattern, immutable once it has been inserted
// into the tree. The registry owns every Route; the tree only ever
// holds a weak reference (identity, handler, priority) back into it.
type Route struct {
	ID       string
	Pattern  string
	Handler  any
	Priority int
	Roles    any // opaque, passed through untouched (authorization is an external collaborator)

	segments []segment.Segment
}

// Segments returns the route's compiled segments. Exposed for
// diagnostics and tests; the tree package consumes segments directly at
// insertion time and never needs this after that.
func (r *Route) Segments() []segment.Segment {
	return r.segments
}
