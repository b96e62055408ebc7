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

package storage

import (
	"time"

	"github.com/rokwire/logging-library-go/v2/logs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// cacheEntry is one stored cache row
type cacheEntry struct {
	Namespace string `bson:"namespace"`
	ItemID    string `bson:"item_id"`
	Value     []byte `bson:"value"`

	DateUpdated time.Time `bson:"date_updated"`
}

// CacheAdapter implements the Cache interface on the cache_entries
// collection. It shares the database with the storage adapter. Reads and
// invalidations never fail - a broken backing store degrades to misses.
type CacheAdapter struct {
	db *database

	logger *logs.Logger
}

// Get loads a cached value, reporting a miss when absent or unreadable
func (ca *CacheAdapter) Get(namespace string, id string) ([]byte, bool) {
	if !ca.db.started {
		return nil, false
	}

	var entry cacheEntry
	err := ca.db.cacheEntries.FindOne(bson.M{"namespace": namespace, "item_id": id}, &entry, nil)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			ca.logger.Warnf("cache get %s/%s: %v", namespace, id, err)
		}
		return nil, false
	}
	return entry.Value, true
}

// Set stores a value, overwriting any previous one for the same key
func (ca *CacheAdapter) Set(namespace string, id string, value []byte) {
	if !ca.db.started {
		return
	}

	entry := cacheEntry{Namespace: namespace, ItemID: id, Value: value, DateUpdated: time.Now().UTC()}
	filter := bson.M{"namespace": namespace, "item_id": id}
	err := ca.db.cacheEntries.ReplaceOne(filter, entry, options.Replace().SetUpsert(true))
	if err != nil {
		ca.logger.Warnf("cache set %s/%s: %v", namespace, id, err)
	}
}

// Invalidate drops a cached value. A failed delete is logged only - the
// entry will be overwritten on the next read-through.
func (ca *CacheAdapter) Invalidate(namespace string, id string) {
	if !ca.db.started {
		return
	}

	_, err := ca.db.cacheEntries.DeleteOne(bson.M{"namespace": namespace, "item_id": id}, nil)
	if err != nil {
		ca.logger.Warnf("cache invalidate %s/%s: %v", namespace, id, err)
	}
}

// IsBackingStoreAvailable says if the durable store behind the cache is up
func (ca *CacheAdapter) IsBackingStoreAvailable() bool {
	return ca.db.started
}

// NewCacheAdapter creates a durable cache adapter sharing the storage
// adapter's database
func NewCacheAdapter(storage *Adapter, logger *logs.Logger) *CacheAdapter {
	return &CacheAdapter{db: storage.db, logger: logger}
}
