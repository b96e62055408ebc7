// Copyright 2022 Board of Trustees of the University of Illinois.
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

package cache

import (
	"fmt"

	"golang.org/x/sync/syncmap"
)

// MemoryAdapter implements the Cache interface in process memory. It is the
// fallback when no durable backing store is configured, so invalidations do
// not cross process boundaries.
type MemoryAdapter struct {
	entries *syncmap.Map
}

// Get loads a cached value
func (ma *MemoryAdapter) Get(namespace string, id string) ([]byte, bool) {
	item, ok := ma.entries.Load(cacheKey(namespace, id))
	if !ok {
		return nil, false
	}
	value, ok := item.([]byte)
	return value, ok
}

// Set stores a value, overwriting any previous one for the same key
func (ma *MemoryAdapter) Set(namespace string, id string, value []byte) {
	ma.entries.Store(cacheKey(namespace, id), value)
}

// Invalidate drops a cached value
func (ma *MemoryAdapter) Invalidate(namespace string, id string) {
	ma.entries.Delete(cacheKey(namespace, id))
}

// IsBackingStoreAvailable always reports false - memory is not durable
func (ma *MemoryAdapter) IsBackingStoreAvailable() bool {
	return false
}

func cacheKey(namespace string, id string) string {
	return fmt.Sprintf("%s/%s", namespace, id)
}

// NewMemoryAdapter creates a new in-memory cache adapter instance
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{entries: &syncmap.Map{}}
}
