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
	"bytes"
	"directory-building-block/core/model"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// Adapter implements the RecordsBackend interface against the spreadsheet
// style records platform REST API
type Adapter struct {
	host    string
	apiKey  string
	baseID  string
	tableID string
	client  *http.Client
}

// CreateBusinessRecord inserts a business row and returns it with the backend record id
func (a *Adapter) CreateBusinessRecord(record model.BusinessRecord) (*model.BusinessRecord, error) {
	body := recordsListRequest{Records: []recordRequest{{Fields: fieldsFromRecord(record)}}}

	var response recordsListResponse
	status, err := a.makeRequest(http.MethodPost, a.tableURL(), body, &response)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, errors.ErrorData(logutils.StatusInvalid, logutils.TypeResponse, &logutils.FieldArgs{"status_code": status})
	}
	if len(response.Records) == 0 {
		return nil, errors.ErrorData(logutils.StatusMissing, model.TypeBusinessRecord, nil)
	}

	created := response.Records[0].toBusinessRecord()
	return &created, nil
}

// FindBusinessRecord gets one business row by backend record id, nil when missing
func (a *Adapter) FindBusinessRecord(recordID string) (*model.BusinessRecord, error) {
	var response recordResponse
	status, err := a.makeRequest(http.MethodGet, a.tableURL()+"/"+recordID, nil, &response)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}

	record := response.toBusinessRecord()
	return &record, nil
}

// FindBusinessRecordByOrganization gets the business row cross-referencing the
// organization id, nil when no row carries it
func (a *Adapter) FindBusinessRecordByOrganization(organizationID string) (*model.BusinessRecord, error) {
	formula := fmt.Sprintf("{%s}='%s'", fieldOrganizationID, escapeFormulaValue(organizationID))
	records, err := a.listByFormula(formula, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// UpdateBusinessRecord patches the given fields of a business row. Nil
// arguments leave the corresponding fields untouched.
func (a *Adapter) UpdateBusinessRecord(recordID string, name *string, slug *string, data *model.BusinessData) error {
	fields := map[string]interface{}{}
	if name != nil {
		fields[fieldName] = *name
	}
	if slug != nil {
		fields[fieldSlug] = *slug
	}
	if data != nil {
		applyDataFields(fields, *data)
	}
	if len(fields) == 0 {
		return errors.ErrorData(logutils.StatusMissing, "record fields", nil)
	}

	body := recordRequest{Fields: fields}
	status, err := a.makeRequest(http.MethodPatch, a.tableURL()+"/"+recordID, body, nil)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return errors.ErrorData(logutils.StatusMissing, model.TypeBusinessRecord, &logutils.FieldArgs{"id": recordID})
	}
	return nil
}

// FindVisibleBusinesses lists the active rows published to the directory
func (a *Adapter) FindVisibleBusinesses() ([]model.BusinessRecord, error) {
	formula := fmt.Sprintf("AND({%s}=1,{%s}='%s')", fieldVisible, fieldStatus, model.BusinessStatusActive)
	return a.listByFormula(formula, 0)
}

func (a *Adapter) listByFormula(formula string, maxRecords int) ([]model.BusinessRecord, error) {
	query := url.Values{}
	query.Set("filterByFormula", formula)
	if maxRecords > 0 {
		query.Set("maxRecords", fmt.Sprintf("%d", maxRecords))
	}

	var records []model.BusinessRecord
	offset := ""
	for {
		if offset != "" {
			query.Set("offset", offset)
		}

		var response recordsListResponse
		_, err := a.makeRequest(http.MethodGet, a.tableURL()+"?"+query.Encode(), nil, &response)
		if err != nil {
			return nil, err
		}
		for _, item := range response.Records {
			records = append(records, item.toBusinessRecord())
		}

		if response.Offset == "" {
			return records, nil
		}
		offset = response.Offset
	}
}

func (a *Adapter) tableURL() string {
	return fmt.Sprintf("%s/v0/%s/%s", a.host, a.baseID, a.tableID)
}

// makeRequest performs one records API call. A 404 is reported through the
// status return with a nil error - absence is not a failure for lookups.
func (a *Adapter) makeRequest(method string, requestURL string, requestBody interface{}, result interface{}) (int, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		data, err := json.Marshal(requestBody)
		if err != nil {
			return 0, errors.WrapErrorAction(logutils.ActionMarshal, logutils.TypeRequestBody, nil, err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, requestURL, bodyReader)
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

// escapeFormulaValue keeps injected values from breaking out of the quoted
// formula literal
func escapeFormulaValue(value string) string {
	return strings.ReplaceAll(value, "'", "\\'")
}

// NewRecordsAdapter creates a new records backend adapter instance
func NewRecordsAdapter(host string, apiKey string, baseID string, tableID string) *Adapter {
	client := &http.Client{Timeout: 20 * time.Second}
	return &Adapter{host: host, apiKey: apiKey, baseID: baseID, tableID: tableID, client: client}
}
