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
	"strconv"
	"time"

	"directory-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Adapter implements the Storage interface
type Adapter struct {
	db *database

	logger *logs.Logger
}

// Start starts the storage
func (sa *Adapter) Start() error {
	err := sa.db.start()
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInitialize, "storage adapter", nil, err)
	}

	return nil
}

// InsertSyncIntent inserts a new sync intent record
func (sa *Adapter) InsertSyncIntent(intent model.SyncIntent) error {
	_, err := sa.db.syncIntents.InsertOne(intent)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionInsert, model.TypeSyncIntent, &logutils.FieldArgs{"_id": intent.ID}, err)
	}
	return nil
}

// SaveSyncIntent replaces a sync intent record, inserting it if missing
func (sa *Adapter) SaveSyncIntent(intent model.SyncIntent) error {
	filter := bson.M{"_id": intent.ID}
	err := sa.db.syncIntents.ReplaceOne(filter, intent, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionSave, model.TypeSyncIntent, &logutils.FieldArgs{"_id": intent.ID}, err)
	}
	return nil
}

// FindSyncIntent finds a sync intent by id
func (sa *Adapter) FindSyncIntent(id string) (*model.SyncIntent, error) {
	var intent model.SyncIntent
	err := sa.db.syncIntents.FindOne(bson.M{"_id": id}, &intent, nil)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeSyncIntent, &logutils.FieldArgs{"_id": id}, err)
	}
	return &intent, nil
}

// FindStuckSyncIntents finds intents that never reached a terminal status and
// have not been touched since before the given time
func (sa *Adapter) FindStuckSyncIntents(before time.Time) ([]model.SyncIntent, error) {
	filter := bson.M{
		"status":       bson.M{"$in": []string{model.SyncIntentPending, model.SyncIntentOrgCreated}},
		"date_created": bson.M{"$lt": before},
	}

	var intents []model.SyncIntent
	err := sa.db.syncIntents.Find(filter, &intents, nil)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeSyncIntent, &logutils.FieldArgs{"before": before}, err)
	}
	return intents, nil
}

// NewStorageAdapter creates a new storage adapter instance
func NewStorageAdapter(mongoDBAuth string, mongoDBName string, mongoTimeout string, logger *logs.Logger) *Adapter {
	timeoutInt, err := strconv.Atoi(mongoTimeout)
	if err != nil {
		logger.Warn("Setting default Mongo timeout - 2000")
		timeoutInt = 2000
	}
	timeout := time.Millisecond * time.Duration(timeoutInt)

	db := &database{mongoDBAuth: mongoDBAuth, mongoDBName: mongoDBName, mongoTimeout: timeout}
	return &Adapter{db: db, logger: logger}
}
