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
	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeBusinessRecord business record type
	TypeBusinessRecord logutils.MessageDataType = "business record"

	//BusinessStatusPending is the status of a record not yet reviewed for the directory
	BusinessStatusPending string = "pending"
	//BusinessStatusActive is the status of a record published to the directory
	BusinessStatusActive string = "active"
)

// BusinessRecord represents a directory-facing business row owned by the records backend
type BusinessRecord struct {
	ID             string //records backend record id
	OrganizationID string //cross-reference to the identity-provider organization

	Name   string
	Slug   string
	Status string

	Visible        bool
	MembershipTier string

	ContactEmail string
	ContactPhone string
	Website      string

	Sustainability string
	ImageURLs      []string
}

// ApplyData overlays the set fields of data onto the record
func (r *BusinessRecord) ApplyData(data BusinessData) {
	if data.MembershipTier != nil {
		r.MembershipTier = *data.MembershipTier
	}
	if data.ContactEmail != nil {
		r.ContactEmail = *data.ContactEmail
	}
	if data.ContactPhone != nil {
		r.ContactPhone = *data.ContactPhone
	}
	if data.Website != nil {
		r.Website = *data.Website
	}
	if data.Sustainability != nil {
		r.Sustainability = *data.Sustainability
	}
	if data.Visible != nil {
		r.Visible = *data.Visible
	}
	if data.ImageURLs != nil {
		r.ImageURLs = *data.ImageURLs
	}
}

// BusinessData carries the caller-editable business record attributes
type BusinessData struct {
	MembershipTier *string
	ContactEmail   *string
	ContactPhone   *string
	Website        *string
	Sustainability *string
	Visible        *bool
	ImageURLs      *[]string
}
