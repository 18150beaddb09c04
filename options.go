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

// Option configures a Router at construction time.
type Option func(*Router)

// WithDiagnostics attaches a handler that receives informational events
// about registration and matching. Diagnostics are optional — the
// router behaves identically whether or not one is attached.
//
// Example:
//
//	r := router.New(router.WithDiagnostics(router.DiagnosticHandlerFunc(
//	    func(e router.DiagnosticEvent) { log.Println(e.Kind, e.Message) },
//	)))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(r *Router) {
		r.diagnostics = handler
	}
}

// WithBloomFilter enables a bloom filter over fully static truncation
// paths, sized for an expected route count, to short-circuit negative
// lookups before the tree walk. Disabled by default; worthwhile once a
// router holds hundreds of static routes.
func WithBloomFilter(expectedRoutes, numHashFuncs int) Option {
	return func(r *Router) {
		r.bloomExpectedRoutes = expectedRoutes
		r.bloomHashFuncs = numHashFuncs
		r.bloomEnabled = true
	}
}
