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
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// Native returns the target matching the host machine, reporting false
// when the host architecture is not carried or the CPU misses required
// features.
func Native() (Target, bool) {
	switch runtime.GOARCH {
	case "amd64":
		if cpuid.CPU.Has(cpuid.SSE2) {
			return targets["amd64"], true
		}
		return nil, false
	case "arm64":
		return targets["arm64"], true
	default:
		return nil, false
	}
}
