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
	"encoding/json"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeIdentityEvent identity provider webhook event type
	TypeIdentityEvent logutils.MessageDataType = "identity event"
	//TypePaymentEvent payment provider webhook event type
	TypePaymentEvent logutils.MessageDataType = "payment event"
	//TypePaymentsCustomer payments provider customer type
	TypePaymentsCustomer logutils.MessageDataType = "payments customer"

	//identity provider event types
	EventOrganizationCreated  string = "organization.created"
	EventOrganizationUpdated  string = "organization.updated"
	EventOrganizationDeleted  string = "organization.deleted"
	EventOrgMembershipCreated string = "organizationMembership.created"
	EventOrgMembershipDeleted string = "organizationMembership.deleted"
	EventUserCreated          string = "user.created"
	EventUserUpdated          string = "user.updated"

	//payment provider event types
	EventCheckoutSessionCompleted string = "checkout.session.completed"
	EventSubscriptionUpdated      string = "customer.subscription.updated"
	EventSubscriptionDeleted      string = "customer.subscription.deleted"
	EventInvoicePaymentSucceeded  string = "invoice.payment_succeeded"
	EventInvoicePaymentFailed     string = "invoice.payment_failed"
)

// IdentityEvent is the verified envelope of an identity provider webhook.
// Data is decoded into the typed payload matching Type by the reconciler.
type IdentityEvent struct {
	Type string          `json:"type" validate:"required"`
	Data json.RawMessage `json:"data" validate:"required"`
}

// IdentityOrganizationPayload is the data shape of organization.* events
type IdentityOrganizationPayload struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// IdentityMembershipPayload is the data shape of organizationMembership.* events
type IdentityMembershipPayload struct {
	OrganizationID string `json:"organization_id" validate:"required"`
	UserID         string `json:"user_id" validate:"required"`
	Role           string `json:"role"`
}

// IdentityUserPayload is the data shape of user.* events
type IdentityUserPayload struct {
	ID    string `json:"id" validate:"required"`
	Email string `json:"email_address"`
}

// PaymentEvent is a verified payment provider webhook, already reduced to the
// fields the reconciler acts on
type PaymentEvent struct {
	ID   string `validate:"required"`
	Type string `validate:"required"`

	CustomerID     string
	SubscriptionID string

	//UserID comes from the checkout session metadata when present
	UserID string
}
