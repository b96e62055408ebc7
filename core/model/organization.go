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
	"fmt"
	"time"

	"github.com/rokwire/logging-library-go/v2/logutils"
)

const (
	//TypeOrganization organization type
	TypeOrganization logutils.MessageDataType = "organization"
	//TypeOrganizationMember organization member type
	TypeOrganizationMember logutils.MessageDataType = "organization member"
	//TypeCompleteOrganization complete organization type
	TypeCompleteOrganization logutils.MessageDataType = "complete organization"

	//MemberRoleOwner is the owner membership role
	MemberRoleOwner string = "owner"
	//MemberRoleMember is the basic membership role
	MemberRoleMember string = "member"

	//OrgMetadataBusinessRecordID is the organization metadata key holding the linked business record id
	OrgMetadataBusinessRecordID string = "business_record_id"
)

// Organization represents an identity-provider owned organization entity
type Organization struct {
	ID   string
	Name string
	Slug string

	Members []OrganizationMember

	//vendor-side metadata, carries the business record cross-reference
	Metadata map[string]string

	DateCreated time.Time
	DateUpdated *time.Time
}

// BusinessRecordID gives the linked business record id from the organization metadata
func (o Organization) BusinessRecordID() string {
	if o.Metadata == nil {
		return ""
	}
	return o.Metadata[OrgMetadataBusinessRecordID]
}

// IsMember says if the user belongs to the organization
func (o Organization) IsMember(userID string) bool {
	for _, member := range o.Members {
		if member.UserID == userID {
			return true
		}
	}
	return false
}

// IsOwner says if the user is an owner of the organization
func (o Organization) IsOwner(userID string) bool {
	for _, member := range o.Members {
		if member.UserID == userID && member.Role == MemberRoleOwner {
			return true
		}
	}
	return false
}

// OwnersCount gives the number of owner members
func (o Organization) OwnersCount() int {
	count := 0
	for _, member := range o.Members {
		if member.Role == MemberRoleOwner {
			count++
		}
	}
	return count
}

func (o Organization) String() string {
	return fmt.Sprintf("[ID:%s\tName:%s\tSlug:%s]", o.ID, o.Name, o.Slug)
}

// OrganizationMember represents a user membership within an organization
type OrganizationMember struct {
	UserID string
	Role   string
}

// CompleteOrganization joins an organization with its linked business record.
// Inconsistent is set when the record lookup failed or the record is missing,
// so callers get partial data instead of a failed call.
type CompleteOrganization struct {
	Organization   Organization
	BusinessRecord *BusinessRecord
	Inconsistent   bool
}

// OrganizationCreation is the result of the two-system creation flow
type OrganizationCreation struct {
	OrganizationID   string
	BusinessRecordID string
	Slug             string
}

// OrganizationUpdate carries the requested changes for the two-system update flow.
// Nil targets are left untouched.
type OrganizationUpdate struct {
	Name     *string
	Business *BusinessData
}

// OrganizationUpdateStatus aggregates the per-target outcomes of an update.
// The two targets are updated independently - one failing does not block the other.
type OrganizationUpdateStatus struct {
	IdentityUpdated bool
	IdentityError   string
	RecordUpdated   bool
	RecordError     string
}

// Succeeded says if every attempted target was updated
func (s OrganizationUpdateStatus) Succeeded() bool {
	return s.IdentityError == "" && s.RecordError == ""
}
