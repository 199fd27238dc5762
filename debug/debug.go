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

package debug

import (
	"github.com/cloudwego/tern/internal/sigcache"
)

// A Stats records statistics about signature legalization.
type Stats struct {
	Cache CacheStats
}

// A CacheStats records statistics about the layout cache.
type CacheStats struct {
	Hit  int
	Miss int
	Size int
}

// GetStats returns statistics of the layout cache, summed over every
// target.
func GetStats() Stats {
	return Stats{
		Cache: CacheStats{
			Hit:  int(sigcache.HitCount),
			Miss: int(sigcache.MissCount),
			Size: int(sigcache.SizeCount),
		},
	}
}
