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
	"time"

	"directory-building-block/core/model"
)

// requests

type businessDataRequest struct {
	MembershipTier *string   `json:"membership_tier,omitempty"`
	ContactEmail   *string   `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone   *string   `json:"contact_phone,omitempty"`
	Website        *string   `json:"website,omitempty"`
	Sustainability *string   `json:"sustainability,omitempty"`
	Visible        *bool     `json:"visible,omitempty"`
	ImageURLs      *[]string `json:"image_urls,omitempty"`
}

func (r *businessDataRequest) toBusinessData() model.BusinessData {
	if r == nil {
		return model.BusinessData{}
	}
	return model.BusinessData{MembershipTier: r.MembershipTier, ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone, Website: r.Website, Sustainability: r.Sustainability,
		Visible: r.Visible, ImageURLs: r.ImageURLs}
}

type createOrganizationRequest struct {
	BusinessName string               `json:"business_name" validate:"required"`
	Business     *businessDataRequest `json:"business,omitempty"`
}

type updateOrganizationRequest struct {
	Action string `json:"action" validate:"omitempty,oneof=update add_member remove_member"`

	//action update
	Name     *string              `json:"name,omitempty"`
	Business *businessDataRequest `json:"business,omitempty"`

	//actions add_member / remove_member
	UserID string `json:"user_id,omitempty"`
	Role   string `json:"role,omitempty"`
}

// responses

type memberResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type organizationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`

	Members []memberResponse `json:"members"`

	Business     *businessResponse `json:"business"`
	Inconsistent bool              `json:"inconsistent,omitempty"`

	DateCreated time.Time  `json:"date_created"`
	DateUpdated *time.Time `json:"date_updated,omitempty"`
}

type businessResponse struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id,omitempty"`

	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Status string `json:"status"`

	Visible        bool   `json:"visible"`
	MembershipTier string `json:"membership_tier,omitempty"`

	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Website      string `json:"website,omitempty"`

	Sustainability string   `json:"sustainability,omitempty"`
	ImageURLs      []string `json:"image_urls,omitempty"`
}

type organizationCreationResponse struct {
	OrganizationID   string `json:"organization_id"`
	BusinessRecordID string `json:"business_record_id"`
	Slug             string `json:"slug"`
}

type organizationUpdateResponse struct {
	IdentityUpdated bool   `json:"identity_updated"`
	IdentityError   string `json:"identity_error,omitempty"`
	RecordUpdated   bool   `json:"record_updated"`
	RecordError     string `json:"record_error,omitempty"`
}

type sweepResponse struct {
	Examined    int      `json:"examined"`
	Completed   []string `json:"completed"`
	Compensated []string `json:"compensated"`
	Stuck       []string `json:"stuck"`
}

func completeOrganizationToResponse(complete model.CompleteOrganization) organizationResponse {
	organization := complete.Organization

	members := make([]memberResponse, len(organization.Members))
	for i, member := range organization.Members {
		members[i] = memberResponse{UserID: member.UserID, Role: member.Role}
	}

	var business *businessResponse
	if complete.BusinessRecord != nil {
		converted := businessRecordToResponse(*complete.BusinessRecord)
		business = &converted
	}

	return organizationResponse{ID: organization.ID, Name: organization.Name, Slug: organization.Slug,
		Members: members, Business: business, Inconsistent: complete.Inconsistent,
		DateCreated: organization.DateCreated, DateUpdated: organization.DateUpdated}
}

func completeOrganizationListToResponse(items []model.CompleteOrganization) []organizationResponse {
	result := make([]organizationResponse, len(items))
	for i, item := range items {
		result[i] = completeOrganizationToResponse(item)
	}
	return result
}

func businessRecordToResponse(record model.BusinessRecord) businessResponse {
	return businessResponse{ID: record.ID, OrganizationID: record.OrganizationID, Name: record.Name,
		Slug: record.Slug, Status: record.Status, Visible: record.Visible, MembershipTier: record.MembershipTier,
		ContactEmail: record.ContactEmail, ContactPhone: record.ContactPhone, Website: record.Website,
		Sustainability: record.Sustainability, ImageURLs: record.ImageURLs}
}

func businessRecordListToResponse(records []model.BusinessRecord) []businessResponse {
	result := make([]businessResponse, len(records))
	for i, record := range records {
		result[i] = businessRecordToResponse(record)
	}
	return result
}
