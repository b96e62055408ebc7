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
	"directory-building-block/core/model"
	"time"
)

// organizationResponse is the admin API organization shape
type organizationResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Slug           string               `json:"slug"`
	PublicMetadata map[string]string    `json:"public_metadata"`
	Memberships    []membershipResponse `json:"memberships"`
	CreatedAt      int64                `json:"created_at"` //unix millis
	UpdatedAt      *int64               `json:"updated_at"`
}

// membershipResponse is the admin API membership shape
type membershipResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// organizationListResponse is the paged list envelope of the admin API
type organizationListResponse struct {
	Data       []organizationResponse `json:"data"`
	TotalCount int                    `json:"total_count"`
}

// userResponse is the admin API user shape
type userResponse struct {
	ID             string            `json:"id"`
	EmailAddress   string            `json:"email_address"`
	PublicMetadata map[string]string `json:"public_metadata"`
}

func (r organizationResponse) toOrganization() model.Organization {
	members := make([]model.OrganizationMember, len(r.Memberships))
	for i, m := range r.Memberships {
		members[i] = model.OrganizationMember{UserID: m.UserID, Role: m.Role}
	}

	var dateUpdated *time.Time
	if r.UpdatedAt != nil {
		updated := time.UnixMilli(*r.UpdatedAt).UTC()
		dateUpdated = &updated
	}

	return model.Organization{ID: r.ID, Name: r.Name, Slug: r.Slug, Members: members,
		Metadata: r.PublicMetadata, DateCreated: time.UnixMilli(r.CreatedAt).UTC(), DateUpdated: dateUpdated}
}
