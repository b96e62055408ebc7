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
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"directory-building-block/core"
	"directory-building-block/core/model"
	genmocks "directory-building-block/mocks"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"
	"gotest.tools/assert"
)

func sessionClaims(userID string) *Claims {
	claims := &Claims{}
	claims.Subject = userID
	return claims
}

func memberOrganization() *model.Organization {
	return &model.Organization{ID: "org-1", Name: "Acme Eco", Slug: "acme-eco",
		Members: []model.OrganizationMember{
			{UserID: "user-1", Role: model.MemberRoleOwner},
			{UserID: "user-2", Role: model.MemberRoleMember},
		},
		Metadata:    map[string]string{model.OrgMetadataBusinessRecordID: "rec-1"},
		DateCreated: time.Now().UTC()}
}

func organizationCoreAPIs(identity *genmocks.IdentityProvider, records *genmocks.RecordsBackend) *core.APIs {
	if identity == nil {
		identity = &genmocks.IdentityProvider{}
	}
	if records == nil {
		records = &genmocks.RecordsBackend{}
	}
	return core.NewCoreAPIs("test", "1.0.0", "build", &genmocks.Storage{}, identity,
		records, &genmocks.PaymentsProvider{}, permissiveCache(), nil, "", logs.NewLogger("test", nil))
}

func TestGetOrganization(t *testing.T) {
	identity := &genmocks.IdentityProvider{}
	identity.On("FindOrganization", "org-1").Return(memberOrganization(), nil)
	records := &genmocks.RecordsBackend{}
	records.On("FindBusinessRecord", "rec-1").Return(&model.BusinessRecord{ID: "rec-1",
		OrganizationID: "org-1", Name: "Acme Eco", Slug: "acme-eco", Status: model.BusinessStatusActive}, nil)

	handler := NewApisHandler(organizationCoreAPIs(identity, records))

	req := httptest.NewRequest(http.MethodGet, "/directory/services/organizations/org-1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "org-1"})

	l := testWebLog()
	recorder := sendResponse(l, handler.getOrganization(l, req, sessionClaims("user-2")))
	assert.Equal(t, recorder.Code, http.StatusOK)

	var response organizationResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	assert.NilError(t, err)
	assert.Equal(t, response.ID, "org-1")
	assert.Assert(t, response.Business != nil)
	assert.Equal(t, response.Business.ID, "rec-1")
	assert.Assert(t, !response.Inconsistent)
}

func TestGetOrganizationNotFound(t *testing.T) {
	identity := &genmocks.IdentityProvider{}
	identity.On("FindOrganization", "org-missing").Return(nil, nil)

	handler := NewApisHandler(organizationCoreAPIs(identity, nil))

	req := httptest.NewRequest(http.MethodGet, "/directory/services/organizations/org-missing", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "org-missing"})

	l := testWebLog()
	recorder := sendResponse(l, handler.getOrganization(l, req, sessionClaims("user-1")))
	assert.Equal(t, recorder.Code, http.StatusNotFound)
}

func TestGetOrganizationNotMember(t *testing.T) {
	identity := &genmocks.IdentityProvider{}
	identity.On("FindOrganization", "org-1").Return(memberOrganization(), nil)
	records := &genmocks.RecordsBackend{}
	records.On("FindBusinessRecord", "rec-1").Return(&model.BusinessRecord{ID: "rec-1"}, nil)

	handler := NewApisHandler(organizationCoreAPIs(identity, records))

	req := httptest.NewRequest(http.MethodGet, "/directory/services/organizations/org-1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "org-1"})

	l := testWebLog()
	recorder := sendResponse(l, handler.getOrganization(l, req, sessionClaims("user-3")))
	assert.Equal(t, recorder.Code, http.StatusForbidden)
}

func TestCreateOrganizationValidation(t *testing.T) {
	handler := NewApisHandler(testCoreAPIs(nil))
	l := testWebLog()

	//no business name
	body := []byte(`{"business":{"website":"https://acme.example"}}`)
	req := httptest.NewRequest(http.MethodPost, "/directory/services/organizations", bytes.NewReader(body))
	recorder := sendResponse(l, handler.createOrganization(l, req, sessionClaims("user-1")))
	assert.Equal(t, recorder.Code, http.StatusBadRequest)

	//blank business name
	body = []byte(`{"business_name":"   "}`)
	req = httptest.NewRequest(http.MethodPost, "/directory/services/organizations", bytes.NewReader(body))
	recorder = sendResponse(l, handler.createOrganization(l, req, sessionClaims("user-1")))
	assert.Equal(t, recorder.Code, http.StatusBadRequest)

	//malformed contact email
	body = []byte(`{"business_name":"Acme Eco","business":{"contact_email":"not-an-email"}}`)
	req = httptest.NewRequest(http.MethodPost, "/directory/services/organizations", bytes.NewReader(body))
	recorder = sendResponse(l, handler.createOrganization(l, req, sessionClaims("user-1")))
	assert.Equal(t, recorder.Code, http.StatusBadRequest)
}

func TestUpdateOrganizationAuthorization(t *testing.T) {
	identity := &genmocks.IdentityProvider{}
	identity.On("FindOrganization", "org-1").Return(memberOrganization(), nil)
	records := &genmocks.RecordsBackend{}
	records.On("FindBusinessRecord", "rec-1").Return(&model.BusinessRecord{ID: "rec-1"}, nil)

	handler := NewApisHandler(organizationCoreAPIs(identity, records))
	l := testWebLog()

	//a plain member may not update the organization
	body := []byte(`{"action":"update","name":"Acme Ecology"}`)
	req := httptest.NewRequest(http.MethodPut, "/directory/services/organizations/org-1", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "org-1"})
	recorder := sendResponse(l, handler.updateOrganization(l, req, sessionClaims("user-2")))
	assert.Equal(t, recorder.Code, http.StatusForbidden)

	//a plain member may not remove someone else
	body = []byte(`{"action":"remove_member","user_id":"user-1"}`)
	req = httptest.NewRequest(http.MethodPut, "/directory/services/organizations/org-1", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "org-1"})
	recorder = sendResponse(l, handler.updateOrganization(l, req, sessionClaims("user-2")))
	assert.Equal(t, recorder.Code, http.StatusForbidden)

	//an unknown action fails validation
	body = []byte(`{"action":"rename"}`)
	req = httptest.NewRequest(http.MethodPut, "/directory/services/organizations/org-1", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": "org-1"})
	recorder = sendResponse(l, handler.updateOrganization(l, req, sessionClaims("user-1")))
	assert.Equal(t, recorder.Code, http.StatusBadRequest)
}

func TestDeleteOrganizationOwnerOnly(t *testing.T) {
	identity := &genmocks.IdentityProvider{}
	identity.On("FindOrganization", "org-1").Return(memberOrganization(), nil)
	records := &genmocks.RecordsBackend{}
	records.On("FindBusinessRecord", "rec-1").Return(&model.BusinessRecord{ID: "rec-1"}, nil)

	handler := NewApisHandler(organizationCoreAPIs(identity, records))

	req := httptest.NewRequest(http.MethodDelete, "/directory/services/organizations/org-1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "org-1"})

	l := testWebLog()
	recorder := sendResponse(l, handler.deleteOrganization(l, req, sessionClaims("user-2")))
	assert.Equal(t, recorder.Code, http.StatusForbidden)
}

func TestGetVersion(t *testing.T) {
	handler := NewApisHandler(testCoreAPIs(nil))

	req := httptest.NewRequest(http.MethodGet, "/directory/version", nil)
	l := testWebLog()
	recorder := sendResponse(l, handler.getVersion(l, req, nil))
	assert.Equal(t, recorder.Code, http.StatusOK)
	assert.Assert(t, strings.Contains(recorder.Body.String(), "1.0.0"))
}
