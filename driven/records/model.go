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
	"directory-building-block/core/model"
)

// column names of the business table in the records backend
const (
	fieldName           string = "Business Name"
	fieldSlug           string = "Slug"
	fieldStatus         string = "Status"
	fieldVisible        string = "Visible"
	fieldTier           string = "Membership Tier"
	fieldContactEmail   string = "Contact Email"
	fieldContactPhone   string = "Contact Phone"
	fieldWebsite        string = "Website"
	fieldSustainability string = "Sustainability"
	fieldImages         string = "Images"
	fieldOrganizationID string = "Organization ID"
)

// recordRequest is one row in a write call
type recordRequest struct {
	Fields map[string]interface{} `json:"fields"`
}

// recordsListRequest is the envelope of a batch write call
type recordsListRequest struct {
	Records []recordRequest `json:"records"`
}

// recordResponse is one row as the backend returns it
type recordResponse struct {
	ID     string                 `json:"id"`
	Fields map[string]interface{} `json:"fields"`
}

// recordsListResponse is the paged list envelope
type recordsListResponse struct {
	Records []recordResponse `json:"records"`
	Offset  string           `json:"offset,omitempty"`
}

// attachment is the backend's stored-file value shape
type attachment struct {
	URL string `json:"url"`
}

func fieldsFromRecord(record model.BusinessRecord) map[string]interface{} {
	fields := map[string]interface{}{
		fieldName:           record.Name,
		fieldSlug:           record.Slug,
		fieldStatus:         record.Status,
		fieldVisible:        record.Visible,
		fieldOrganizationID: record.OrganizationID,
	}
	if record.MembershipTier != "" {
		fields[fieldTier] = record.MembershipTier
	}
	if record.ContactEmail != "" {
		fields[fieldContactEmail] = record.ContactEmail
	}
	if record.ContactPhone != "" {
		fields[fieldContactPhone] = record.ContactPhone
	}
	if record.Website != "" {
		fields[fieldWebsite] = record.Website
	}
	if record.Sustainability != "" {
		fields[fieldSustainability] = record.Sustainability
	}
	if len(record.ImageURLs) > 0 {
		fields[fieldImages] = attachmentsFromURLs(record.ImageURLs)
	}
	return fields
}

func applyDataFields(fields map[string]interface{}, data model.BusinessData) {
	if data.MembershipTier != nil {
		fields[fieldTier] = *data.MembershipTier
	}
	if data.ContactEmail != nil {
		fields[fieldContactEmail] = *data.ContactEmail
	}
	if data.ContactPhone != nil {
		fields[fieldContactPhone] = *data.ContactPhone
	}
	if data.Website != nil {
		fields[fieldWebsite] = *data.Website
	}
	if data.Sustainability != nil {
		fields[fieldSustainability] = *data.Sustainability
	}
	if data.Visible != nil {
		fields[fieldVisible] = *data.Visible
	}
	if data.ImageURLs != nil {
		fields[fieldImages] = attachmentsFromURLs(*data.ImageURLs)
	}
}

func attachmentsFromURLs(urls []string) []attachment {
	attachments := make([]attachment, len(urls))
	for i, u := range urls {
		attachments[i] = attachment{URL: u}
	}
	return attachments
}

// toBusinessRecord maps a backend row onto the domain type. Field values come
// back duck-typed, so every read is checked.
func (r recordResponse) toBusinessRecord() model.BusinessRecord {
	record := model.BusinessRecord{ID: r.ID}
	record.Name = stringField(r.Fields, fieldName)
	record.Slug = stringField(r.Fields, fieldSlug)
	record.Status = stringField(r.Fields, fieldStatus)
	record.MembershipTier = stringField(r.Fields, fieldTier)
	record.ContactEmail = stringField(r.Fields, fieldContactEmail)
	record.ContactPhone = stringField(r.Fields, fieldContactPhone)
	record.Website = stringField(r.Fields, fieldWebsite)
	record.Sustainability = stringField(r.Fields, fieldSustainability)
	record.OrganizationID = stringField(r.Fields, fieldOrganizationID)
	record.Visible = boolField(r.Fields, fieldVisible)
	record.ImageURLs = attachmentURLs(r.Fields, fieldImages)
	return record
}

func stringField(fields map[string]interface{}, name string) string {
	if value, ok := fields[name].(string); ok {
		return value
	}
	return ""
}

func boolField(fields map[string]interface{}, name string) bool {
	switch value := fields[name].(type) {
	case bool:
		return value
	case float64:
		//checkbox columns may come back numeric
		return value != 0
	}
	return false
}

func attachmentURLs(fields map[string]interface{}, name string) []string {
	items, ok := fields[name].([]interface{})
	if !ok {
		return nil
	}
	var urls []string
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if u, ok := entry["url"].(string); ok {
			urls = append(urls, u)
		}
	}
	return urls
}
