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
	"testing"

	"github.com/cloudwego/tern/internal/sigcache"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	base := GetStats()
	c := sigcache.New()

	_, err := c.Compute("k", 0, func() (*sigcache.Layout, error) {
		return new(sigcache.Layout), nil
	})
	require.NoError(t, err)
	require.NotNil(t, c.Get("k"))

	stats := GetStats()
	require.Equal(t, base.Cache.Miss+1, stats.Cache.Miss)
	require.Equal(t, base.Cache.Hit+1, stats.Cache.Hit)
	require.Equal(t, base.Cache.Size+1, stats.Cache.Size)
}
