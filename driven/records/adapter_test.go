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

package records

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"directory-building-block/core/model"

	"gotest.tools/assert"
)

func TestCreateBusinessRecord(t *testing.T) {
	var gotPath string
	var gotAuth string
	var gotBody recordsListRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		err := json.NewDecoder(r.Body).Decode(&gotBody)
		if err != nil {
			t.Fatal(err)
		}

		response := recordsListResponse{Records: []recordResponse{{
			ID: "rec-1",
			Fields: map[string]interface{}{
				fieldName:           "Acme Eco",
				fieldSlug:           "acme-eco",
				fieldStatus:         model.BusinessStatusPending,
				fieldVisible:        false,
				fieldOrganizationID: "org-1",
			},
		}}}
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	adapter := NewRecordsAdapter(server.URL, "test-key", "base-1", "table-1")
	created, err := adapter.CreateBusinessRecord(model.BusinessRecord{
		Name: "Acme Eco", Slug: "acme-eco", Status: model.BusinessStatusPending, OrganizationID: "org-1",
		ContactEmail: "hello@acme.example",
	})
	assert.NilError(t, err)
	assert.Assert(t, created != nil)
	assert.Equal(t, created.ID, "rec-1")
	assert.Equal(t, created.Name, "Acme Eco")

	assert.Equal(t, gotPath, "/v0/base-1/table-1")
	assert.Equal(t, gotAuth, "Bearer test-key")
	assert.Equal(t, len(gotBody.Records), 1)

	fields := gotBody.Records[0].Fields
	assert.Equal(t, fields[fieldName], "Acme Eco")
	assert.Equal(t, fields[fieldOrganizationID], "org-1")
	assert.Equal(t, fields[fieldContactEmail], "hello@acme.example")
	//unset optional columns stay off the request
	_, hasWebsite := fields[fieldWebsite]
	assert.Assert(t, !hasWebsite)
}

func TestFindBusinessRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/base-1/table-1/rec-1" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"type":"NOT_FOUND"}}`))
			return
		}

		response := recordResponse{
			ID: "rec-1",
			Fields: map[string]interface{}{
				fieldName:    "Acme Eco",
				fieldSlug:    "acme-eco",
				fieldStatus:  model.BusinessStatusActive,
				fieldVisible: true,
				fieldImages: []interface{}{
					map[string]interface{}{"url": "https://files.example/logo.png"},
				},
				fieldOrganizationID: "org-1",
			},
		}
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	adapter := NewRecordsAdapter(server.URL, "test-key", "base-1", "table-1")

	record, err := adapter.FindBusinessRecord("rec-1")
	assert.NilError(t, err)
	assert.Assert(t, record != nil)
	assert.Equal(t, record.Status, model.BusinessStatusActive)
	assert.Equal(t, record.Visible, true)
	assert.Equal(t, len(record.ImageURLs), 1)
	assert.Equal(t, record.ImageURLs[0], "https://files.example/logo.png")

	//absence is not a failure
	record, err = adapter.FindBusinessRecord("rec-missing")
	assert.NilError(t, err)
	assert.Assert(t, record == nil)
}

func TestFindBusinessRecordByOrganization(t *testing.T) {
	var gotFormula string
	var gotMaxRecords string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFormula = r.URL.Query().Get("filterByFormula")
		gotMaxRecords = r.URL.Query().Get("maxRecords")

		response := recordsListResponse{Records: []recordResponse{{
			ID:     "rec-1",
			Fields: map[string]interface{}{fieldName: "Acme Eco", fieldOrganizationID: "org-1"},
		}}}
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	adapter := NewRecordsAdapter(server.URL, "test-key", "base-1", "table-1")

	record, err := adapter.FindBusinessRecordByOrganization("org-1")
	assert.NilError(t, err)
	assert.Assert(t, record != nil)
	assert.Equal(t, record.ID, "rec-1")
	assert.Equal(t, gotFormula, "{Organization ID}='org-1'")
	assert.Equal(t, gotMaxRecords, "1")
}

func TestFindBusinessRecordByOrganizationEscapesFormula(t *testing.T) {
	var gotFormula string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFormula = r.URL.Query().Get("filterByFormula")
		json.NewEncoder(w).Encode(recordsListResponse{})
	}))
	defer server.Close()

	adapter := NewRecordsAdapter(server.URL, "test-key", "base-1", "table-1")

	record, err := adapter.FindBusinessRecordByOrganization("org'1")
	assert.NilError(t, err)
	assert.Assert(t, record == nil)
	assert.Equal(t, gotFormula, `{Organization ID}='org\'1'`)
}

func TestFindVisibleBusinesses(t *testing.T) {
	var gotFormulas []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFormulas = append(gotFormulas, r.URL.Query().Get("filterByFormula"))

		var response recordsListResponse
		if r.URL.Query().Get("offset") == "" {
			response = recordsListResponse{
				Records: []recordResponse{{ID: "rec-1", Fields: map[string]interface{}{fieldName: "Acme Eco"}}},
				Offset:  "page-2",
			}
		} else {
			response = recordsListResponse{
				Records: []recordResponse{{ID: "rec-2", Fields: map[string]interface{}{fieldName: "Beta Market"}}},
			}
		}
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	adapter := NewRecordsAdapter(server.URL, "test-key", "base-1", "table-1")

	businesses, err := adapter.FindVisibleBusinesses()
	assert.NilError(t, err)
	assert.Equal(t, len(businesses), 2)
	assert.Equal(t, businesses[0].ID, "rec-1")
	assert.Equal(t, businesses[1].ID, "rec-2")

	assert.Equal(t, len(gotFormulas), 2)
	assert.Equal(t, gotFormulas[0], "AND({Visible}=1,{Status}='active')")
}

func TestUpdateBusinessRecord(t *testing.T) {
	var gotMethod string
	var gotBody recordRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		err := json.NewDecoder(r.Body).Decode(&gotBody)
		if err != nil {
			t.Fatal(err)
		}
		json.NewEncoder(w).Encode(recordResponse{ID: "rec-1", Fields: gotBody.Fields})
	}))
	defer server.Close()

	adapter := NewRecordsAdapter(server.URL, "test-key", "base-1", "table-1")

	name := "Acme Ecology"
	visible := true
	err := adapter.UpdateBusinessRecord("rec-1", &name, nil, &model.BusinessData{Visible: &visible})
	assert.NilError(t, err)
	assert.Equal(t, gotMethod, http.MethodPatch)
	assert.Equal(t, gotBody.Fields[fieldName], "Acme Ecology")
	assert.Equal(t, gotBody.Fields[fieldVisible], true)
	//untouched columns stay off the patch
	_, hasSlug := gotBody.Fields[fieldSlug]
	assert.Assert(t, !hasSlug)
}

func TestUpdateBusinessRecordNoFields(t *testing.T) {
	adapter := NewRecordsAdapter("http://localhost", "test-key", "base-1", "table-1")

	err := adapter.UpdateBusinessRecord("rec-1", nil, nil, nil)
	assert.Assert(t, err != nil)
}

func TestUpdateBusinessRecordMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"NOT_FOUND"}}`))
	}))
	defer server.Close()

	adapter := NewRecordsAdapter(server.URL, "test-key", "base-1", "table-1")

	name := "Acme Eco"
	err := adapter.UpdateBusinessRecord("rec-gone", &name, nil, nil)
	assert.Assert(t, err != nil)
}
