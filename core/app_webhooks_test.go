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
	"encoding/json"
	"fmt"
	"testing"

	"directory-building-block/core/model"
	genmocks "directory-building-block/mocks"

	"github.com/stretchr/testify/mock"
	"gotest.tools/assert"
)

func identityEvent(t *testing.T, eventType string, payload interface{}) model.IdentityEvent {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return model.IdentityEvent{Type: eventType, Data: data}
}

func TestProcessIdentityEventOrganizationCreated(t *testing.T) {
	identity := &genmocks.IdentityProvider{}
	identity.On("SetOrganizationMetadata", "org-1", map[string]string{model.OrgMetadataBusinessRecordID: "rec-1"}).Return(nil)

	records := &genmocks.RecordsBackend{}
	records.On("FindBusinessRecordByOrganization", "org-1").Return(nil, nil)
	records.On("CreateBusinessRecord", mock.MatchedBy(func(record model.BusinessRecord) bool {
		return record.OrganizationID == "org-1" && record.Status == model.BusinessStatusPending
	})).Return(&model.BusinessRecord{ID: "rec-1", OrganizationID: "org-1"}, nil)

	apis := newTestAPIs(testAdapters{identity: identity, records: records})

	event := identityEvent(t, model.EventOrganizationCreated,
		model.IdentityOrganizationPayload{ID: "org-1", Name: "Acme Eco", Slug: "acme-eco"})
	err := apis.Webhooks.ProcessIdentityEvent(testLog(), event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	identity.AssertExpectations(t)
	records.AssertExpectations(t)
}

func TestProcessIdentityEventOrganizationCreatedRedelivery(t *testing.T) {
	//a record already exists - the event patches it instead of duplicating it
	records := &genmocks.RecordsBackend{}
	records.On("FindBusinessRecordByOrganization", "org-1").
		Return(&model.BusinessRecord{ID: "rec-1", OrganizationID: "org-1"}, nil)
	records.On("UpdateBusinessRecord", "rec-1", mock.Anything, mock.Anything, (*model.BusinessData)(nil)).Return(nil)

	apis := newTestAPIs(testAdapters{records: records})

	event := identityEvent(t, model.EventOrganizationCreated,
		model.IdentityOrganizationPayload{ID: "org-1", Name: "Acme Eco", Slug: "acme-eco"})
	err := apis.Webhooks.ProcessIdentityEvent(testLog(), event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records.AssertNotCalled(t, "CreateBusinessRecord", mock.Anything)
}

func TestProcessIdentityEventOrganizationDeleted(t *testing.T) {
	records := &genmocks.RecordsBackend{}
	cache := quietCache()

	apis := newTestAPIs(testAdapters{records: records, cache: cache})

	event := identityEvent(t, model.EventOrganizationDeleted, model.IdentityOrganizationPayload{ID: "org-1"})
	err := apis.Webhooks.ProcessIdentityEvent(testLog(), event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	//the record outlives the organization; only caches are dropped
	records.AssertNotCalled(t, "UpdateBusinessRecord", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	cache.AssertCalled(t, "Invalidate", "organization", "org-1")
}

func TestProcessIdentityEventUserCreated(t *testing.T) {
	identity := &genmocks.IdentityProvider{}
	identity.On("FindUserMetadata", "user-1").Return(map[string]string{}, nil)
	identity.On("UpdateUserMetadata", "user-1", map[string]string{"stripeCustomerId": "cus-1"}).Return(nil)

	payments := &genmocks.PaymentsProvider{}
	payments.On("CreateCustomer", "jo@example.org", "user-1").Return("cus-1", nil)

	apis := newTestAPIs(testAdapters{identity: identity, payments: payments})

	event := identityEvent(t, model.EventUserCreated, model.IdentityUserPayload{ID: "user-1", Email: "jo@example.org"})
	err := apis.Webhooks.ProcessIdentityEvent(testLog(), event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	identity.AssertExpectations(t)
	payments.AssertExpectations(t)
}

func TestProcessIdentityEventUserCreatedRedelivery(t *testing.T) {
	identity := &genmocks.IdentityProvider{}
	identity.On("FindUserMetadata", "user-1").Return(map[string]string{"stripeCustomerId": "cus-1"}, nil)

	payments := &genmocks.PaymentsProvider{}

	apis := newTestAPIs(testAdapters{identity: identity, payments: payments})

	event := identityEvent(t, model.EventUserCreated, model.IdentityUserPayload{ID: "user-1", Email: "jo@example.org"})
	err := apis.Webhooks.ProcessIdentityEvent(testLog(), event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payments.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
}

func TestProcessIdentityEventUnknownType(t *testing.T) {
	identity := &genmocks.IdentityProvider{}
	records := &genmocks.RecordsBackend{}

	apis := newTestAPIs(testAdapters{identity: identity, records: records})

	event := identityEvent(t, "session.revoked", map[string]string{"id": "sess-1"})
	err := apis.Webhooks.ProcessIdentityEvent(testLog(), event)
	if err != nil {
		t.Fatalf("unknown event types must not error: %v", err)
	}
}

func TestProcessPaymentEventCheckoutCompleted(t *testing.T) {
	identity := &genmocks.IdentityProvider{}
	identity.On("UpdateUserMetadata", "user-1", map[string]string{
		"stripeCustomerId":      "cus-1",
		"hasActiveSubscription": "true",
	}).Return(nil)

	cache := quietCache()
	apis := newTestAPIs(testAdapters{identity: identity, cache: cache})

	event := model.PaymentEvent{ID: "evt-1", Type: model.EventCheckoutSessionCompleted,
		CustomerID: "cus-1", SubscriptionID: "sub-1", UserID: "user-1"}
	err := apis.Webhooks.ProcessPaymentEvent(testLog(), event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	identity.AssertExpectations(t)
	cache.AssertCalled(t, "Invalidate", "customer", "cus-1")
	cache.AssertCalled(t, "Invalidate", "subscription", "sub-1")
	cache.AssertCalled(t, "Invalidate", "user", "user-1")
}

func TestProcessPaymentEventCheckoutMissingUser(t *testing.T) {
	identity := &genmocks.IdentityProvider{}
	apis := newTestAPIs(testAdapters{identity: identity})

	event := model.PaymentEvent{ID: "evt-1", Type: model.EventCheckoutSessionCompleted, CustomerID: "cus-1"}
	err := apis.Webhooks.ProcessPaymentEvent(testLog(), event)
	if err == nil {
		t.Fatal("expected error for a checkout event without a user reference")
	}
	identity.AssertNotCalled(t, "UpdateUserMetadata", mock.Anything, mock.Anything)
}

func TestProcessPaymentEventSubscriptionUpdated(t *testing.T) {
	identity := &genmocks.IdentityProvider{}
	cache := quietCache()
	apis := newTestAPIs(testAdapters{identity: identity, cache: cache})

	event := model.PaymentEvent{ID: "evt-2", Type: model.EventSubscriptionUpdated, CustomerID: "cus-1", SubscriptionID: "sub-1"}
	err := apis.Webhooks.ProcessPaymentEvent(testLog(), event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//cache drop only, no identity writes
	cache.AssertCalled(t, "Invalidate", "subscription", "sub-1")
	identity.AssertNotCalled(t, "UpdateUserMetadata", mock.Anything, mock.Anything)
}

func TestProcessIdentityEventMirrorFindFails(t *testing.T) {
	records := &genmocks.RecordsBackend{}
	records.On("FindBusinessRecordByOrganization", "org-1").Return(nil, fmt.Errorf("records backend down"))

	cache := quietCache()
	apis := newTestAPIs(testAdapters{records: records, cache: cache})

	event := identityEvent(t, model.EventOrganizationUpdated, model.IdentityOrganizationPayload{ID: "org-1", Name: "New"})
	err := apis.Webhooks.ProcessIdentityEvent(testLog(), event)
	if err == nil {
		t.Fatal("expected the mirror failure to surface")
	}
	//caches are still dropped so no stale view outlives the event
	cache.AssertCalled(t, "Invalidate", "organization", "org-1")
}

func TestProcessIdentityEventInvalidPayload(t *testing.T) {
	apis := newTestAPIs(testAdapters{})

	event := identityEvent(t, model.EventOrganizationCreated, map[string]string{"name": "missing id"})
	err := apis.Webhooks.ProcessIdentityEvent(testLog(), event)
	if err == nil {
		t.Fatal("expected validation error for a payload without an id")
	}
	assert.Assert(t, err != nil)
}
