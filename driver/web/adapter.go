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
	"fmt"
	"net/http"

	"directory-building-block/core"
	"directory-building-block/utils"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"
)

// Adapter entity
type Adapter struct {
	host string
	port string

	auth   *Auth
	logger *logs.Logger

	apisHandler         ApisHandler
	adminApisHandler    AdminApisHandler
	webhooksApisHandler WebhooksApisHandler

	coreAPIs *core.APIs
}

type handlerFunc = func(*logs.Log, *http.Request, *Claims) logs.HTTPResponse

// authCheck verifies a request before it reaches the handler
type authCheck interface {
	check(req *http.Request) (*Claims, int, error)
}

// Start starts the module
func (we Adapter) Start() {
	router := mux.NewRouter().StrictSlash(true)

	// handle apis
	subRouter := router.PathPrefix("/directory").Subrouter()
	subRouter.HandleFunc("/version", we.wrapFunc(we.apisHandler.getVersion, nil)).Methods("GET")

	///services ///
	servicesSubRouter := subRouter.PathPrefix("/services").Subrouter()
	servicesSubRouter.HandleFunc("/businesses", we.wrapFunc(we.apisHandler.getBusinesses, nil)).Methods("GET")

	servicesSubRouter.HandleFunc("/organizations", we.wrapFunc(we.apisHandler.createOrganization, we.auth.session)).Methods("POST")
	servicesSubRouter.HandleFunc("/organizations", we.wrapFunc(we.apisHandler.getUserOrganizations, we.auth.session)).Methods("GET")
	servicesSubRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.apisHandler.getOrganization, we.auth.session)).Methods("GET")
	servicesSubRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.apisHandler.updateOrganization, we.auth.session)).Methods("PUT")
	servicesSubRouter.HandleFunc("/organizations/{id}", we.wrapFunc(we.apisHandler.deleteOrganization, we.auth.session)).Methods("DELETE")
	///

	///webhooks - the handlers verify the vendor signatures themselves ///
	webhooksSubRouter := subRouter.PathPrefix("/webhooks").Subrouter()
	webhooksSubRouter.HandleFunc("/identity", we.wrapFunc(we.webhooksApisHandler.processIdentityWebhook, nil)).Methods("POST")
	webhooksSubRouter.HandleFunc("/payments", we.wrapFunc(we.webhooksApisHandler.processPaymentsWebhook, nil)).Methods("POST")
	///

	///admin ///
	adminSubRouter := subRouter.PathPrefix("/admin").Subrouter()
	adminSubRouter.HandleFunc("/sync-intents/sweep", we.wrapFunc(we.adminApisHandler.sweepSyncIntents, we.auth.admin)).Methods("POST")
	///

	we.logger.Fatalf("listen: %v", http.ListenAndServe(fmt.Sprintf(":%s", we.port), router))
}

func (we Adapter) wrapFunc(handler handlerFunc, authorization authCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		utils.LogRequest(req)
		logObj := we.logger.NewRequestLog(req)
		logObj.RequestReceived()

		var claims *Claims
		if authorization != nil {
			checkedClaims, status, err := authorization.check(req)
			if err != nil {
				response := logObj.HTTPResponseError("Unauthorized", err, status, true)
				logObj.SendHTTPResponse(w, response)
				logObj.RequestComplete()
				return
			}
			claims = checkedClaims
		}

		response := handler(logObj, req, claims)
		logObj.SendHTTPResponse(w, response)
		logObj.RequestComplete()
	}
}

// NewWebAdapter creates new WebAdapter instance
func NewWebAdapter(coreAPIs *core.APIs, host string, port string, sessionSecret string, adminAPIKey string,
	identityWebhookSecret string, paymentsWebhookSecret string, logger *logs.Logger) Adapter {
	auth := NewAuth(sessionSecret, adminAPIKey)

	apisHandler := NewApisHandler(coreAPIs)
	adminApisHandler := NewAdminApisHandler(coreAPIs)
	webhooksApisHandler := NewWebhooksApisHandler(coreAPIs, identityWebhookSecret, paymentsWebhookSecret)
	return Adapter{host: host, port: port, auth: auth, logger: logger, apisHandler: apisHandler,
		adminApisHandler: adminApisHandler, webhooksApisHandler: webhooksApisHandler, coreAPIs: coreAPIs}
}
