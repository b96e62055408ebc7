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

package model

import (
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeSyncIntent sync intent type
	TypeSyncIntent logutils.MessageDataType = "sync intent"

	//SyncIntentPending - the intent is recorded, no vendor call has happened yet
	SyncIntentPending string = "pending"
	//SyncIntentOrgCreated - the organization exists, the business record does not yet
	SyncIntentOrgCreated string = "org_created"
	//SyncIntentCompleted - both sides exist and cross-reference each other
	SyncIntentCompleted string = "completed"
	//SyncIntentCompensated - the intent was abandoned by the reconciliation sweep
	SyncIntentCompensated string = "compensated"
)

// SyncIntent is the saga record for the two-system organization creation flow.
// It is written before the first vendor call and advanced after each step, so
// a sweep can find creations stuck between systems.
type SyncIntent struct {
	ID string `bson:"_id"`

	OrganizationName string `bson:"organization_name"`
	AdminUserID      string `bson:"admin_user_id"`

	Status           string `bson:"status"`
	OrganizationID   string `bson:"organization_id,omitempty"`
	BusinessRecordID string `bson:"business_record_id,omitempty"`
	Error            string `bson:"error,omitempty"`

	DateCreated time.Time  `bson:"date_created"`
	DateUpdated *time.Time `bson:"date_updated,omitempty"`
}

// SweepResult reports what a reconciliation sweep did
type SweepResult struct {
	Examined    int
	Completed   []string //intent ids whose sagas were finished
	Compensated []string //intent ids marked abandoned
	Stuck       []string //intent ids the sweep could not resolve
}

// HasStuck says if any intent is left unresolved
func (r SweepResult) HasStuck() bool {
	return len(r.Stuck) > 0
}
