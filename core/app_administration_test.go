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

package core

import (
	"fmt"
	"testing"
	"time"

	"directory-building-block/core/model"
	genmocks "directory-building-block/mocks"

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func TestSweepSyncIntentsCompensatesPending(t *testing.T) {
	pending := model.SyncIntent{ID: "intent-1", OrganizationName: "Acme Eco", AdminUserID: "user-1",
		Status: model.SyncIntentPending, DateCreated: time.Now().Add(-time.Hour)}

	storage := &genmocks.Storage{}
	storage.On("FindStuckSyncIntents", mock.Anything).Return([]model.SyncIntent{pending}, nil)
	var saved []model.SyncIntent
	storage.On("SaveSyncIntent", mock.Anything).Run(func(args mock.Arguments) {
		saved = append(saved, args.Get(0).(model.SyncIntent))
	}).Return(nil)

	apis := newTestAPIs(testAdapters{storage: storage})

	result, err := apis.Administration.SweepSyncIntents(testLog(), 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, result.Examined, 1)
	assert.Equal(t, len(result.Compensated), 1)
	assert.Equal(t, len(result.Completed), 0)
	assert.Assert(t, !result.HasStuck())

	assert.Equal(t, saved[0].Status, model.SyncIntentCompensated)
	assert.Assert(t, saved[0].Error != "")
}

func TestSweepSyncIntentsResumesOrgCreated(t *testing.T) {
	stuck := model.SyncIntent{ID: "intent-1", OrganizationName: "Acme Eco", AdminUserID: "user-1",
		Status: model.SyncIntentOrgCreated, OrganizationID: "org-1", DateCreated: time.Now().Add(-time.Hour)}

	storage := &genmocks.Storage{}
	storage.On("FindStuckSyncIntents", mock.Anything).Return([]model.SyncIntent{stuck}, nil)
	var saved []model.SyncIntent
	storage.On("SaveSyncIntent", mock.Anything).Run(func(args mock.Arguments) {
		saved = append(saved, args.Get(0).(model.SyncIntent))
	}).Return(nil)

	identity := &genmocks.IdentityProvider{}
	identity.On("FindOrganization", "org-1").Return(&model.Organization{ID: "org-1", Name: "Acme Eco", Slug: "acme-eco"}, nil)
	identity.On("SetOrganizationMetadata", "org-1", map[string]string{model.OrgMetadataBusinessRecordID: "rec-1"}).Return(nil)

	records := &genmocks.RecordsBackend{}
	records.On("FindBusinessRecordByOrganization", "org-1").Return(nil, nil)
	records.On("CreateBusinessRecord", mock.Anything).Return(&model.BusinessRecord{ID: "rec-1", OrganizationID: "org-1"}, nil)

	apis := newTestAPIs(testAdapters{storage: storage, identity: identity, records: records})

	result, err := apis.Administration.SweepSyncIntents(testLog(), 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, len(result.Completed), 1)
	assert.Equal(t, result.Completed[0], "intent-1")

	last := saved[len(saved)-1]
	assert.Equal(t, last.Status, model.SyncIntentCompleted)
	assert.Equal(t, last.BusinessRecordID, "rec-1")
	identity.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestSweepSyncIntentsCompensatesWhenOrganizationGone(t *testing.T) {
	stuck := model.SyncIntent{ID: "intent-1", Status: model.SyncIntentOrgCreated,
		OrganizationID: "org-1", DateCreated: time.Now().Add(-time.Hour)}

	storage := &genmocks.Storage{}
	storage.On("FindStuckSyncIntents", mock.Anything).Return([]model.SyncIntent{stuck}, nil)
	storage.On("SaveSyncIntent", mock.MatchedBy(func(intent model.SyncIntent) bool {
		return intent.Status == model.SyncIntentCompensated
	})).Return(nil)

	identity := &genmocks.IdentityProvider{}
	identity.On("FindOrganization", "org-1").Return(nil, nil)

	apis := newTestAPIs(testAdapters{storage: storage, identity: identity})

	result, err := apis.Administration.SweepSyncIntents(testLog(), 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, len(result.Compensated), 1)
	storage.AssertExpectations(t)
}

func TestSweepSyncIntentsNotifiesOnStuck(t *testing.T) {
	stuck := model.SyncIntent{ID: "intent-1", Status: model.SyncIntentOrgCreated,
		OrganizationID: "org-1", DateCreated: time.Now().Add(-time.Hour)}

	storage := &genmocks.Storage{}
	storage.On("FindStuckSyncIntents", mock.Anything).Return([]model.SyncIntent{stuck}, nil)

	identity := &genmocks.IdentityProvider{}
	identity.On("FindOrganization", "org-1").Return(nil, fmt.Errorf("identity down"))

	notifier := &genmocks.Notifier{}
	notifier.On("Send", "ops@example.org", mock.Anything, mock.Anything, (*string)(nil)).Return(nil)

	apis := newTestAPIs(testAdapters{storage: storage, identity: identity, notifier: notifier})

	result, err := apis.Administration.SweepSyncIntents(testLog(), 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, len(result.Stuck), 1)
	notifier.AssertExpectations(t)
}

func TestSweepSyncIntentsStorageError(t *testing.T) {
	storage := &genmocks.Storage{}
	storage.On("FindStuckSyncIntents", mock.Anything).Return(nil, fmt.Errorf("mongo down"))

	apis := newTestAPIs(testAdapters{storage: storage})

	_, err := apis.Administration.SweepSyncIntents(testLog(), 30*time.Minute)
	if err == nil {
		t.Fatal("expected the storage failure to surface")
	}
}
