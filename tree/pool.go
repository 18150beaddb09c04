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

package tree

import "github.com/valyala/bytebufferpool"

// capturePool supplies scratch buffers for assembling the wildcard
// capture's "/seg/seg/" text and the catch-all remainder's "seg/seg"
// text, so neither allocates a fresh buffer per match. Buffers are
// always returned on every exit path — see wildcardCapture and
// catchAllRemainder below.
var capturePool bytebufferpool.Pool

// wildcardCapture formats the remaining request segments from index i
// the way the wildcard branch captures them: each remaining segment
// surrounded by slashes, or "/" if none remain.
func wildcardCapture(request []string, i int) string {
	if i >= len(request) {
		return "/"
	}

	buf := capturePool.Get()
	defer capturePool.Put(buf)

	buf.WriteByte('/')
	for _, seg := range request[i:] {
		buf.WriteString(seg)
		buf.WriteByte('/')
	}

	return buf.String()
}

// catchAllRemainder joins the remaining request segments from index i
// with '/', the form a catch-all constraint is validated against.
func catchAllRemainder(request []string, i int) string {
	if i >= len(request) {
		return ""
	}

	buf := capturePool.Get()
	defer capturePool.Put(buf)

	for j, seg := range request[i:] {
		if j > 0 {
			buf.WriteByte('/')
		}
		buf.WriteString(seg)
	}

	return buf.String()
}
