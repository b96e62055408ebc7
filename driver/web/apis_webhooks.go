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

package web

import (
	"encoding/json"
	"io"
	"net/http"

	"directory-building-block/core"
	"directory-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"github.com/stripe/stripe-go/v76/webhook"
	svix "github.com/svix/svix-webhooks/go"
	"gopkg.in/go-playground/validator.v9"
)

// WebhooksApisHandler handles the inbound vendor webhooks. Both endpoints are
// fail closed - an unverifiable request is rejected before any processing.
type WebhooksApisHandler struct {
	coreAPIs *core.APIs

	identityVerifier      *svix.Webhook
	paymentsWebhookSecret string
}

var receivedResponse = []byte(`{"received":true}`)

func (h WebhooksApisHandler) processIdentityWebhook(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	if h.identityVerifier == nil {
		return l.HTTPResponseErrorData(logutils.StatusMissing, "webhook verifier", nil, nil, http.StatusInternalServerError, true)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	err = h.identityVerifier.Verify(body, r.Header)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, model.TypeIdentityEvent, nil, err, http.StatusBadRequest, false)
	}

	var event model.IdentityEvent
	err = json.Unmarshal(body, &event)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, model.TypeIdentityEvent, nil, err, http.StatusBadRequest, false)
	}
	validate := validator.New()
	err = validate.Struct(event)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, model.TypeIdentityEvent, nil, err, http.StatusBadRequest, false)
	}

	//a verified event is always acknowledged - a processing failure is retried
	//by the reconciliation paths, not by the vendor
	err = h.coreAPIs.Webhooks.ProcessIdentityEvent(l, event)
	if err != nil {
		l.WarnError(logutils.MessageActionError(logutils.ActionSave, model.TypeIdentityEvent, nil), err)
	}
	return l.HTTPResponseSuccessJSON(receivedResponse)
}

func (h WebhooksApisHandler) processPaymentsWebhook(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	stripeEvent, err := webhook.ConstructEvent(body, r.Header.Get("Stripe-Signature"), h.paymentsWebhookSecret)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, model.TypePaymentEvent, nil, err, http.StatusBadRequest, false)
	}

	event := model.PaymentEvent{ID: stripeEvent.ID, Type: string(stripeEvent.Type)}
	if object := stripeEvent.Data.Object; object != nil {
		event.CustomerID = objectString(object, "customer")
		event.SubscriptionID = objectString(object, "subscription")
		if string(stripeEvent.Type) == model.EventSubscriptionUpdated || string(stripeEvent.Type) == model.EventSubscriptionDeleted {
			//on subscription events the object itself is the subscription
			event.SubscriptionID = objectString(object, "id")
		}
		if metadata, ok := object["metadata"].(map[string]interface{}); ok {
			event.UserID, _ = metadata["userId"].(string)
		}
	}

	err = h.coreAPIs.Webhooks.ProcessPaymentEvent(l, event)
	if err != nil {
		l.WarnError(logutils.MessageActionError(logutils.ActionSave, model.TypePaymentEvent, nil), err)
	}
	return l.HTTPResponseSuccessJSON(receivedResponse)
}

func objectString(object map[string]interface{}, key string) string {
	value, _ := object[key].(string)
	return value
}

// NewWebhooksApisHandler creates new webhooks Handler instance
func NewWebhooksApisHandler(coreAPIs *core.APIs, identityWebhookSecret string, paymentsWebhookSecret string) WebhooksApisHandler {
	identityVerifier, err := svix.NewWebhook(identityWebhookSecret)
	if err != nil {
		identityVerifier = nil
	}
	return WebhooksApisHandler{coreAPIs: coreAPIs, identityVerifier: identityVerifier, paymentsWebhookSecret: paymentsWebhookSecret}
}
