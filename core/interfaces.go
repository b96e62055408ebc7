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
	"directory-building-block/core/model"
	"time"

	"github.com/rokwire/logging-library-go/v2/logs"
)

// Services exposes the sync service APIs for the driver adapters
type Services interface {
	CreateCompleteOrganization(l *logs.Log, businessName string, adminUserID string, businessData model.BusinessData) (*model.OrganizationCreation, error)
	UpdateCompleteOrganization(l *logs.Log, organizationID string, update model.OrganizationUpdate) (*model.OrganizationUpdateStatus, error)
	GetUserCompleteOrganizations(l *logs.Log, userID string) ([]model.CompleteOrganization, error)
	GetCompleteOrganization(l *logs.Log, organizationID string) (*model.CompleteOrganization, error)
	AddOrganizationMember(l *logs.Log, organizationID string, userID string, role string) error
	RemoveOrganizationMember(l *logs.Log, organizationID string, userID string) error
	DeleteCompleteOrganization(l *logs.Log, organizationID string) error

	GetDirectoryBusinesses(l *logs.Log) ([]model.BusinessRecord, error)
}

// Webhooks exposes the reconcilers for verified inbound vendor events
type Webhooks interface {
	ProcessIdentityEvent(l *logs.Log, event model.IdentityEvent) error
	ProcessPaymentEvent(l *logs.Log, event model.PaymentEvent) error
}

// Administration exposes the operator APIs for the driver adapters
type Administration interface {
	SweepSyncIntents(l *logs.Log, olderThan time.Duration) (*model.SweepResult, error)
}

// IdentityProvider is used by core to manage organizations, memberships and
// user metadata in the external identity platform
type IdentityProvider interface {
	CreateOrganization(name string, slug string, adminUserID string) (*model.Organization, error)
	FindOrganization(organizationID string) (*model.Organization, error)
	FindUserOrganizations(userID string) ([]model.Organization, error)
	UpdateOrganization(organizationID string, name string, slug string) error
	SetOrganizationMetadata(organizationID string, metadata map[string]string) error
	DeleteOrganization(organizationID string) error

	AddMember(organizationID string, userID string, role string) error
	RemoveMember(organizationID string, userID string) error

	FindUserMetadata(userID string) (map[string]string, error)
	UpdateUserMetadata(userID string, metadata map[string]string) error
}

// RecordsBackend is used by core to read and mutate directory business
// records in the external records platform
type RecordsBackend interface {
	CreateBusinessRecord(record model.BusinessRecord) (*model.BusinessRecord, error)
	FindBusinessRecord(recordID string) (*model.BusinessRecord, error)
	FindBusinessRecordByOrganization(organizationID string) (*model.BusinessRecord, error)
	UpdateBusinessRecord(recordID string, name *string, slug *string, data *model.BusinessData) error
	FindVisibleBusinesses() ([]model.BusinessRecord, error)
}

// PaymentsProvider is used by core to manage customer records in the
// external payments platform
type PaymentsProvider interface {
	CreateCustomer(email string, userID string) (string, error)
}

// Cache is the process-wide keyed cache capability. Implementations never
// fail reads or invalidations - a miss on the next read is acceptable.
type Cache interface {
	Get(namespace string, id string) ([]byte, bool)
	Set(namespace string, id string, value []byte)
	Invalidate(namespace string, id string)
	IsBackingStoreAvailable() bool
}

// Storage is used by core to persist sync intents - the saga records for
// two-system organization creation
type Storage interface {
	InsertSyncIntent(intent model.SyncIntent) error
	SaveSyncIntent(intent model.SyncIntent) error
	FindSyncIntent(id string) (*model.SyncIntent, error)
	FindStuckSyncIntents(before time.Time) ([]model.SyncIntent, error)
}

// Notifier is used by core to surface reconciliation problems to operators
type Notifier interface {
	Send(toEmail string, subject string, body string, attachmentFilename *string) error
}
