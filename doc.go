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

// Package router example:
//
//	r := router.New()
//	r.SetIndexRoute(homeHandler)
//	r.AddController("products")
//	r.AddRoute("/products/{id:int}", getProduct)
//	r.AddRoute("/products/{id:int}/reviews/{page=1:int}", listReviews, router.WithPriority(10))
//	r.AddRoute("/assets/{path}", serveAsset)
//	r.AddRoute("/docs/{**rest}", serveDocs)
//
//	result := r.Match("/products/42")
//	if result.IsMatch {
//	    result.Route.Handler.(func(map[string]string))(result.Params)
//	}
package router
