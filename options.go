/*
 * Copyright 2023 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tern

import (
	"fmt"

	"github.com/cloudwego/tern/internal/opts"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithCacheDisabled makes LegalizeSignature compute the layout from
// scratch instead of going through the per-target cache.
//
// Caching can also be disabled globally with the `TERN_DISABLE_CACHE`
// environment variable.
func WithCacheDisabled() Option {
	return func(o *opts.Options) { o.DisableCache = true }
}

// WithMaxCachedSignatures bounds the number of layouts memoized per
// target.
//
// Set this option to "0" disables this limit, which means caching every
// distinct signature ever legalized.
//
// The default value of this option is "4096".
func WithMaxCachedSignatures(size int) Option {
	if size < 0 {
		panic(fmt.Sprintf("tern: invalid cached signature count: %d", size))
	} else {
		return func(o *opts.Options) { o.MaxCachedSignatures = size }
	}
}

// SetMaxCachedSignatures sets the default maximum number of memoized
// layouts per target from now on.
//
// This value can also be configured with the `TERN_MAX_CACHED_SIGNATURES`
// environment variable.
//
// Returns the old opts.MaxCachedSignatures value.
func SetMaxCachedSignatures(size int) int {
	size, opts.MaxCachedSignatures = opts.MaxCachedSignatures, size
	return size
}
