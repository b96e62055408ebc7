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

package payments

import (
	"directory-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Adapter implements the PaymentsProvider interface against Stripe
type Adapter struct {
	api *client.API
}

// CreateCustomer creates a payments customer carrying the identity user id in its metadata
func (a *Adapter) CreateCustomer(email string, userID string) (string, error) {
	params := &stripe.CustomerParams{Email: stripe.String(email)}
	params.AddMetadata("user_id", userID)

	customer, err := a.api.Customers.New(params)
	if err != nil {
		return "", errors.WrapErrorAction(logutils.ActionCreate, model.TypePaymentsCustomer, &logutils.FieldArgs{"user_id": userID}, err)
	}
	return customer.ID, nil
}

// NewPaymentsAdapter creates a new payments adapter instance
func NewPaymentsAdapter(secretKey string) *Adapter {
	return &Adapter{api: client.New(secretKey, nil)}
}
