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
	"testing"

	"gotest.tools/assert"
)

func TestMemoryAdapter(t *testing.T) {
	adapter := NewMemoryAdapter()

	_, found := adapter.Get("organization", "org-1")
	assert.Assert(t, !found)

	adapter.Set("organization", "org-1", []byte(`{"id":"org-1"}`))
	value, found := adapter.Get("organization", "org-1")
	assert.Assert(t, found)
	assert.Equal(t, string(value), `{"id":"org-1"}`)

	//namespaces do not collide
	_, found = adapter.Get("business", "org-1")
	assert.Assert(t, !found)

	adapter.Set("organization", "org-1", []byte(`{"id":"org-1","name":"Acme Eco"}`))
	value, _ = adapter.Get("organization", "org-1")
	assert.Equal(t, string(value), `{"id":"org-1","name":"Acme Eco"}`)

	adapter.Invalidate("organization", "org-1")
	_, found = adapter.Get("organization", "org-1")
	assert.Assert(t, !found)
}

func TestMemoryAdapterBackingStore(t *testing.T) {
	adapter := NewMemoryAdapter()
	assert.Assert(t, !adapter.IsBackingStoreAvailable())
}
