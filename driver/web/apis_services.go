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
	"strings"

	"directory-building-block/core"
	"directory-building-block/core/model"

	"github.com/gorilla/mux"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"gopkg.in/go-playground/validator.v9"
)

// ApisHandler handles the member-facing APIs implementation
type ApisHandler struct {
	coreAPIs *core.APIs
}

func (h ApisHandler) getVersion(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	return l.HTTPResponseSuccessMessage(h.coreAPIs.GetVersion())
}

func (h ApisHandler) getBusinesses(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	businesses, err := h.coreAPIs.Services.GetDirectoryBusinesses(l)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeBusinessRecord, nil, err, http.StatusInternalServerError, true)
	}

	data, err := json.Marshal(businessRecordListToResponse(businesses))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeBusinessRecord, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ApisHandler) createOrganization(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData createOrganizationRequest
	err = json.Unmarshal(body, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	if strings.TrimSpace(requestData.BusinessName) == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeRequestBody, logutils.StringArgs("business_name"), nil, http.StatusBadRequest, false)
	}

	creation, err := h.coreAPIs.Services.CreateCompleteOrganization(l, requestData.BusinessName, claims.UserID(), requestData.Business.toBusinessData())
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeCompleteOrganization, nil, err, http.StatusInternalServerError, true)
	}

	data, err := json.Marshal(organizationCreationResponse{OrganizationID: creation.OrganizationID,
		BusinessRecordID: creation.BusinessRecordID, Slug: creation.Slug})
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, logutils.TypeResponseBody, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ApisHandler) getUserOrganizations(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	complete, err := h.coreAPIs.Services.GetUserCompleteOrganizations(l, claims.UserID())
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeCompleteOrganization, nil, err, http.StatusInternalServerError, true)
	}

	data, err := json.Marshal(completeOrganizationListToResponse(complete))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeCompleteOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ApisHandler) getOrganization(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	organizationID := params["id"]
	if organizationID == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	complete, response := h.findMemberOrganization(l, organizationID, claims.UserID())
	if complete == nil {
		return *response
	}

	data, err := json.Marshal(completeOrganizationToResponse(*complete))
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, model.TypeCompleteOrganization, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

func (h ApisHandler) updateOrganization(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	organizationID := params["id"]
	if organizationID == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionRead, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}

	var requestData updateOrganizationRequest
	err = json.Unmarshal(body, &requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionUnmarshal, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	validate := validator.New()
	err = validate.Struct(requestData)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionValidate, logutils.TypeRequestBody, nil, err, http.StatusBadRequest, false)
	}
	if requestData.Action == "" {
		requestData.Action = "update"
	}

	complete, response := h.findMemberOrganization(l, organizationID, claims.UserID())
	if complete == nil {
		return *response
	}
	organization := complete.Organization

	switch requestData.Action {
	case "update":
		if !organization.IsOwner(claims.UserID()) {
			return l.HTTPResponseErrorData(logutils.StatusInvalid, model.TypeOrganizationMember, logutils.StringArgs("owner role required"), nil, http.StatusForbidden, false)
		}
		if requestData.Name == nil && requestData.Business == nil {
			return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeRequestBody, logutils.StringArgs("update fields"), nil, http.StatusBadRequest, false)
		}
		if requestData.Name != nil && strings.TrimSpace(*requestData.Name) == "" {
			return l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeRequestBody, logutils.StringArgs("name"), nil, http.StatusBadRequest, false)
		}

		update := model.OrganizationUpdate{Name: requestData.Name}
		if requestData.Business != nil {
			business := requestData.Business.toBusinessData()
			update.Business = &business
		}

		status, err := h.coreAPIs.Services.UpdateCompleteOrganization(l, organizationID, update)
		if err != nil {
			return l.HTTPResponseErrorAction(logutils.ActionUpdate, model.TypeCompleteOrganization, nil, err, http.StatusInternalServerError, true)
		}
		if status == nil {
			return l.HTTPResponseErrorData(logutils.StatusMissing, model.TypeOrganization, logutils.StringArgs(organizationID), nil, http.StatusNotFound, false)
		}

		data, err := json.Marshal(organizationUpdateResponse{IdentityUpdated: status.IdentityUpdated,
			IdentityError: status.IdentityError, RecordUpdated: status.RecordUpdated, RecordError: status.RecordError})
		if err != nil {
			return l.HTTPResponseErrorAction(logutils.ActionMarshal, logutils.TypeResponseBody, nil, err, http.StatusInternalServerError, false)
		}
		return l.HTTPResponseSuccessJSON(data)

	case "add_member":
		if !organization.IsOwner(claims.UserID()) {
			return l.HTTPResponseErrorData(logutils.StatusInvalid, model.TypeOrganizationMember, logutils.StringArgs("owner role required"), nil, http.StatusForbidden, false)
		}
		if requestData.UserID == "" {
			return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeRequestBody, logutils.StringArgs("user_id"), nil, http.StatusBadRequest, false)
		}

		err := h.coreAPIs.Services.AddOrganizationMember(l, organizationID, requestData.UserID, requestData.Role)
		if err != nil {
			return l.HTTPResponseErrorAction(logutils.ActionCreate, model.TypeOrganizationMember, nil, err, http.StatusInternalServerError, true)
		}
		return l.HTTPResponseSuccess()

	case "remove_member":
		if requestData.UserID == "" {
			return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypeRequestBody, logutils.StringArgs("user_id"), nil, http.StatusBadRequest, false)
		}
		//owners manage members, anyone may remove themselves
		if !organization.IsOwner(claims.UserID()) && requestData.UserID != claims.UserID() {
			return l.HTTPResponseErrorData(logutils.StatusInvalid, model.TypeOrganizationMember, logutils.StringArgs("owner role required"), nil, http.StatusForbidden, false)
		}

		err := h.coreAPIs.Services.RemoveOrganizationMember(l, organizationID, requestData.UserID)
		if err != nil {
			return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeOrganizationMember, nil, err, http.StatusBadRequest, true)
		}
		return l.HTTPResponseSuccess()
	}

	return l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeRequestBody, logutils.StringArgs("action"), nil, http.StatusBadRequest, false)
}

func (h ApisHandler) deleteOrganization(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	params := mux.Vars(r)
	organizationID := params["id"]
	if organizationID == "" {
		return l.HTTPResponseErrorData(logutils.StatusMissing, logutils.TypePathParam, logutils.StringArgs("id"), nil, http.StatusBadRequest, false)
	}

	complete, response := h.findMemberOrganization(l, organizationID, claims.UserID())
	if complete == nil {
		return *response
	}
	if !complete.Organization.IsOwner(claims.UserID()) {
		return l.HTTPResponseErrorData(logutils.StatusInvalid, model.TypeOrganizationMember, logutils.StringArgs("owner role required"), nil, http.StatusForbidden, false)
	}

	err := h.coreAPIs.Services.DeleteCompleteOrganization(l, organizationID)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionDelete, model.TypeOrganization, nil, err, http.StatusInternalServerError, true)
	}
	return l.HTTPResponseSuccess()
}

// findMemberOrganization loads an organization and enforces that the user
// belongs to it. A nil organization means the returned response must be sent.
func (h ApisHandler) findMemberOrganization(l *logs.Log, organizationID string, userID string) (*model.CompleteOrganization, *logs.HTTPResponse) {
	complete, err := h.coreAPIs.Services.GetCompleteOrganization(l, organizationID)
	if err != nil {
		response := l.HTTPResponseErrorAction(logutils.ActionGet, model.TypeCompleteOrganization, nil, err, http.StatusInternalServerError, true)
		return nil, &response
	}
	if complete == nil {
		response := l.HTTPResponseErrorData(logutils.StatusMissing, model.TypeOrganization, logutils.StringArgs(organizationID), nil, http.StatusNotFound, false)
		return nil, &response
	}
	if !complete.Organization.IsMember(userID) {
		response := l.HTTPResponseErrorData(logutils.StatusInvalid, model.TypeOrganizationMember, logutils.StringArgs(userID), nil, http.StatusForbidden, false)
		return nil, &response
	}
	return complete, nil
}

// NewApisHandler creates new ApisHandler instance
func NewApisHandler(coreAPIs *core.APIs) ApisHandler {
	return ApisHandler{coreAPIs: coreAPIs}
}
