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

package identity

import (
	"bytes"
	"directory-building-block/core/model"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// Adapter implements the IdentityProvider interface against the identity
// platform's admin REST API
type Adapter struct {
	host   string
	apiKey string
	client *http.Client
}

// CreateOrganization creates an organization with the admin user as owner
func (a *Adapter) CreateOrganization(name string, slug string, adminUserID string) (*model.Organization, error) {
	body := map[string]string{"name": name, "slug": slug, "created_by": adminUserID}

	var response organizationResponse
	status, err := a.makeRequest(http.MethodPost, "/v1/organizations", body, &response)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeResponse, &logutils.FieldArgs{"status_code": status})
	}

	organization := response.toOrganization()
	return &organization, nil
}

// FindOrganization gets an organization with its member list, nil when it does not exist
func (a *Adapter) FindOrganization(organizationID string) (*model.Organization, error) {
	var response organizationResponse
	status, err := a.makeRequest(http.MethodGet, "/v1/organizations/"+organizationID+"?include_members=true", nil, &response)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	organization := response.toOrganization()
	return &organization, nil
}

// FindUserOrganizations lists the organizations the user belongs to
func (a *Adapter) FindUserOrganizations(userID string) ([]model.Organization, error) {
	var response organizationListResponse
	status, err := a.makeRequest(http.MethodGet, "/v1/users/"+userID+"/organizations", nil, &response)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	organizations := make([]model.Organization, len(response.Data))
	for i, item := range response.Data {
		organizations[i] = item.toOrganization()
	}
	return organizations, nil
}

// UpdateOrganization updates the organization name and slug
func (a *Adapter) UpdateOrganization(organizationID string, name string, slug string) error {
	body := map[string]string{"name": name, "slug": slug}
	return a.makeMutation(http.MethodPatch, "/v1/organizations/"+organizationID, body)
}

// SetOrganizationMetadata merges the given keys into the organization metadata
func (a *Adapter) SetOrganizationMetadata(organizationID string, metadata map[string]string) error {
	body := map[string]interface{}{"public_metadata": metadata}
	return a.makeMutation(http.MethodPatch, "/v1/organizations/"+organizationID+"/metadata", body)
}

// DeleteOrganization deletes the organization
func (a *Adapter) DeleteOrganization(organizationID string) error {
	return a.makeMutation(http.MethodDelete, "/v1/organizations/"+organizationID, nil)
}

// AddMember adds a user to the organization with the given role
func (a *Adapter) AddMember(organizationID string, userID string, role string) error {
	body := map[string]string{"user_id": userID, "role": role}
	return a.makeMutation(http.MethodPost, "/v1/organizations/"+organizationID+"/memberships", body)
}

// RemoveMember removes a user from the organization
func (a *Adapter) RemoveMember(organizationID string, userID string) error {
	return a.makeMutation(http.MethodDelete, "/v1/organizations/"+organizationID+"/memberships/"+userID, nil)
}

// FindUserMetadata gets the public metadata of a user
func (a *Adapter) FindUserMetadata(userID string) (map[string]string, error) {
	var response userResponse
	status, err := a.makeRequest(http.MethodGet, "/v1/users/"+userID, nil, &response)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, errors.ErrorData(logutils.StatusMissing, "user", &logutils.FieldArgs{"id": userID})
	}
	if response.PublicMetadata == nil {
		return map[string]string{}, nil
	}
	return response.PublicMetadata, nil
}

// UpdateUserMetadata merges the given keys into the user's public metadata
func (a *Adapter) UpdateUserMetadata(userID string, metadata map[string]string) error {
	body := map[string]interface{}{"public_metadata": metadata}
	return a.makeMutation(http.MethodPatch, "/v1/users/"+userID+"/metadata", body)
}

func (a *Adapter) makeMutation(method string, path string, requestBody interface{}) error {
	status, err := a.makeRequest(method, path, requestBody, nil)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return errors.ErrorData(logutils.StatusMissing, logutils.TypeResponse, &logutils.FieldArgs{"path": path})
	}
	return nil
}

// makeRequest performs one admin API call. A 404 is reported through the
// status return with a nil error - absence is not a failure for lookups.
func (a *Adapter) makeRequest(method string, path string, requestBody interface{}, result interface{}) (int, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		data, err := json.Marshal(requestBody)
		if err != nil {
			return 0, errors.WrapErrorAction(logutils.ActionMarshal, logutils.TypeRequestBody, nil, err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, a.host+path, bodyReader)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionCreate, logutils.TypeRequest, nil, err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	if requestBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, errors.WrapErrorAction(logutils.ActionSend, logutils.TypeRequest, nil, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, errors.WrapErrorAction(logutils.ActionRead, logutils.TypeResponse, nil, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return resp.StatusCode, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, errors.ErrorData(logutils.StatusInvalid, logutils.TypeResponse,
			&logutils.FieldArgs{"status_code": resp.StatusCode, "error": string(body)})
	}

	if result != nil {
		if len(body) == 0 {
			return resp.StatusCode, errors.ErrorData(logutils.StatusMissing, logutils.TypeResponseBody, nil)
		}
		err = json.Unmarshal(body, result)
		if err != nil {
			return resp.StatusCode, errors.WrapErrorAction(logutils.ActionUnmarshal, logutils.TypeResponseBody, nil, err)
		}
	}
	return resp.StatusCode, nil
}

// NewIdentityAdapter creates a new identity provider adapter instance
func NewIdentityAdapter(host string, apiKey string) *Adapter {
	client := &http.Client{Timeout: 20 * time.Second}
	return &Adapter{host: host, apiKey: apiKey, client: client}
}
