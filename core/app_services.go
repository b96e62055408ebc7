package core

import (
	"directory-building-block/core/model"
	"directory-building-block/utils"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"golang.org/x/sync/errgroup"
)

func (app *application) createCompleteOrganization(l *logs.Log, businessName string, adminUserID string, businessData model.BusinessData) (*model.OrganizationCreation, error) {
	name := strings.TrimSpace(businessName)
	if name == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, "business name", nil)
	}
	if adminUserID == "" {
		return nil, errors.ErrorData(logutils.StatusMissing, "admin user id", nil)
	}
	slug := utils.Slugify(name)

	//record the intent before the first vendor call so a stuck creation is findable
	intent := model.SyncIntent{ID: uuid.NewString(), OrganizationName: name, AdminUserID: adminUserID,
		Status: model.SyncIntentPending, DateCreated: time.Now().UTC()}
	err := app.storage.InsertSyncIntent(intent)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionInsert, model.TypeSyncIntent, nil, err)
	}

	//step 1 - create the organization with the admin as owner
	organization, err := app.identity.CreateOrganization(name, slug, adminUserID)
	if err != nil {
		app.recordSyncFailure(l, intent, err)
		return nil, errors.WrapErrorAction(logutils.ActionCreate, model.TypeOrganization, nil, err)
	}
	intent.OrganizationID = organization.ID
	app.advanceSyncIntent(l, &intent, model.SyncIntentOrgCreated)

	//step 2 - mirror it as a business record with the organization id cross-referenced.
	//No rollback on failure - the organization stays in place for the sweep to finish or report.
	record := model.BusinessRecord{OrganizationID: organization.ID, Name: name, Slug: slug,
		Status: model.BusinessStatusPending}
	record.ApplyData(businessData)
	created, err := app.records.CreateBusinessRecord(record)
	if err != nil {
		app.recordSyncFailure(l, intent, err)
		return nil, errors.WrapErrorAction(logutils.ActionCreate, model.TypeBusinessRecord,
			&logutils.FieldArgs{"organization_id": organization.ID}, err)
	}

	//step 3 - store the record id back onto the organization metadata
	err = app.identity.SetOrganizationMetadata(organization.ID, map[string]string{model.OrgMetadataBusinessRecordID: created.ID})
	if err != nil {
		app.recordSyncFailure(l, intent, err)
		return nil, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization,
			&logutils.FieldArgs{"organization_id": organization.ID}, err)
	}

	intent.BusinessRecordID = created.ID
	app.advanceSyncIntent(l, &intent, model.SyncIntentCompleted)

	app.cache.Invalidate(cacheNamespaceUser, adminUserID)
	app.cache.Invalidate(cacheNamespaceDirectory, directoryVisibleKey)

	return &model.OrganizationCreation{OrganizationID: organization.ID, BusinessRecordID: created.ID, Slug: slug}, nil
}

func (app *application) updateCompleteOrganization(l *logs.Log, organizationID string, update model.OrganizationUpdate) (*model.OrganizationUpdateStatus, error) {
	if update.Name == nil && update.Business == nil {
		return nil, errors.ErrorData(logutils.StatusMissing, "update fields", nil)
	}

	organization, err := app.identity.FindOrganization(organizationID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization,
			&logutils.FieldArgs{"id": organizationID}, err)
	}
	if organization == nil {
		return nil, nil
	}

	status := model.OrganizationUpdateStatus{}

	var name *string
	var slug *string
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" {
			return nil, errors.ErrorData(logutils.StatusMissing, "business name", nil)
		}
		generated := utils.Slugify(trimmed)
		name = &trimmed
		slug = &generated
	}

	//each target is updated on its own - a failure on one does not block the other
	if name != nil {
		err := app.identity.UpdateOrganization(organizationID, *name, *slug)
		if err != nil {
			l.WarnError(logutils.MessageActionError(logutils.ActionUpdate, model.TypeOrganization, nil), err)
			status.IdentityError = err.Error()
		} else {
			status.IdentityUpdated = true
		}
	}

	recordID := organization.BusinessRecordID()
	if recordID == "" {
		record, err := app.records.FindBusinessRecordByOrganization(organizationID)
		if err == nil && record != nil {
			recordID = record.ID
		}
	}
	if recordID == "" {
		status.RecordError = "no linked business record"
	} else {
		err := app.records.UpdateBusinessRecord(recordID, name, slug, update.Business)
		if err != nil {
			l.WarnError(logutils.MessageActionError(logutils.ActionUpdate, model.TypeBusinessRecord, nil), err)
			status.RecordError = err.Error()
		} else {
			status.RecordUpdated = true
		}
	}

	app.cache.Invalidate(cacheNamespaceOrganization, organizationID)
	if recordID != "" {
		app.cache.Invalidate(cacheNamespaceBusiness, recordID)
	}
	app.cache.Invalidate(cacheNamespaceDirectory, directoryVisibleKey)

	return &status, nil
}

func (app *application) getUserCompleteOrganizations(l *logs.Log, userID string) ([]model.CompleteOrganization, error) {
	organizations, err := app.identity.FindUserOrganizations(userID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization,
			&logutils.FieldArgs{"user_id": userID}, err)
	}

	complete := make([]model.CompleteOrganization, len(organizations))
	var group errgroup.Group
	group.SetLimit(4)
	for i, organization := range organizations {
		i, organization := i, organization
		group.Go(func() error {
			//join failures yield a flagged partial element, never an error
			complete[i] = app.joinBusinessRecord(l, organization)
			return nil
		})
	}
	group.Wait()

	return complete, nil
}

func (app *application) getCompleteOrganization(l *logs.Log, organizationID string) (*model.CompleteOrganization, error) {
	organization, err := app.identity.FindOrganization(organizationID)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization,
			&logutils.FieldArgs{"id": organizationID}, err)
	}
	if organization == nil {
		return nil, nil
	}

	complete := app.joinBusinessRecord(l, *organization)
	return &complete, nil
}

func (app *application) addOrganizationMember(l *logs.Log, organizationID string, userID string, role string) error {
	if role == "" {
		role = model.MemberRoleMember
	}
	if role != model.MemberRoleOwner && role != model.MemberRoleMember {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeOrganizationMember, &logutils.FieldArgs{"role": role})
	}

	err := app.identity.AddMember(organizationID, userID, role)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCreate, model.TypeOrganizationMember,
			&logutils.FieldArgs{"organization_id": organizationID, "user_id": userID}, err)
	}

	app.cache.Invalidate(cacheNamespaceOrganization, organizationID)
	app.cache.Invalidate(cacheNamespaceUser, userID)
	return nil
}

func (app *application) removeOrganizationMember(l *logs.Log, organizationID string, userID string) error {
	organization, err := app.identity.FindOrganization(organizationID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization,
			&logutils.FieldArgs{"id": organizationID}, err)
	}
	if organization == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"id": organizationID})
	}

	//refuse to orphan the organization
	if organization.IsOwner(userID) && organization.OwnersCount() == 1 {
		return errors.ErrorData(logutils.StatusInvalid, model.TypeOrganizationMember,
			&logutils.FieldArgs{"user_id": userID, "reason": "sole owner"})
	}

	err = app.identity.RemoveMember(organizationID, userID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeOrganizationMember,
			&logutils.FieldArgs{"organization_id": organizationID, "user_id": userID}, err)
	}

	app.cache.Invalidate(cacheNamespaceOrganization, organizationID)
	app.cache.Invalidate(cacheNamespaceUser, userID)
	return nil
}

func (app *application) deleteCompleteOrganization(l *logs.Log, organizationID string) error {
	organization, err := app.identity.FindOrganization(organizationID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization,
			&logutils.FieldArgs{"id": organizationID}, err)
	}
	if organization == nil {
		return errors.ErrorData(logutils.StatusMissing, model.TypeOrganization, &logutils.FieldArgs{"id": organizationID})
	}

	//the business record is retained - directory data outlives membership structures
	err = app.identity.DeleteOrganization(organizationID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionDelete, model.TypeOrganization,
			&logutils.FieldArgs{"id": organizationID}, err)
	}

	app.cache.Invalidate(cacheNamespaceOrganization, organizationID)
	if recordID := organization.BusinessRecordID(); recordID != "" {
		app.cache.Invalidate(cacheNamespaceBusiness, recordID)
	}
	app.cache.Invalidate(cacheNamespaceDirectory, directoryVisibleKey)
	return nil
}

const directoryVisibleKey = "visible"

func (app *application) getDirectoryBusinesses(l *logs.Log) ([]model.BusinessRecord, error) {
	if data, found := app.cache.Get(cacheNamespaceDirectory, directoryVisibleKey); found {
		var businesses []model.BusinessRecord
		if err := json.Unmarshal(data, &businesses); err == nil {
			return businesses, nil
		}
		l.WarnError(logutils.MessageActionError(logutils.ActionUnmarshal, model.TypeBusinessRecord, nil), nil)
	}

	businesses, err := app.records.FindVisibleBusinesses()
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeBusinessRecord, nil, err)
	}

	if data, err := json.Marshal(businesses); err == nil {
		app.cache.Set(cacheNamespaceDirectory, directoryVisibleKey, data)
	}
	return businesses, nil
}

// joinBusinessRecord attaches the linked business record to an organization,
// flagging the result instead of failing when the lookup goes wrong
func (app *application) joinBusinessRecord(l *logs.Log, organization model.Organization) model.CompleteOrganization {
	complete := model.CompleteOrganization{Organization: organization}

	var record *model.BusinessRecord
	var err error
	if recordID := organization.BusinessRecordID(); recordID != "" {
		record, err = app.findBusinessRecordCached(recordID)
	} else {
		record, err = app.records.FindBusinessRecordByOrganization(organization.ID)
	}
	if err != nil {
		l.WarnError(logutils.MessageActionError(logutils.ActionFind, model.TypeBusinessRecord, nil), err)
		complete.Inconsistent = true
		return complete
	}
	if record == nil {
		complete.Inconsistent = true
		return complete
	}

	complete.BusinessRecord = record
	return complete
}

// findBusinessRecordCached is a read-through lookup keyed by record id
func (app *application) findBusinessRecordCached(recordID string) (*model.BusinessRecord, error) {
	if data, found := app.cache.Get(cacheNamespaceBusiness, recordID); found {
		var record model.BusinessRecord
		if err := json.Unmarshal(data, &record); err == nil {
			return &record, nil
		}
	}

	record, err := app.records.FindBusinessRecord(recordID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		if data, err := json.Marshal(record); err == nil {
			app.cache.Set(cacheNamespaceBusiness, recordID, data)
		}
	}
	return record, nil
}

func (app *application) advanceSyncIntent(l *logs.Log, intent *model.SyncIntent, status string) {
	intent.Status = status
	now := time.Now().UTC()
	intent.DateUpdated = &now
	if err := app.storage.SaveSyncIntent(*intent); err != nil {
		l.WarnError(logutils.MessageActionError(logutils.ActionSave, model.TypeSyncIntent, nil), err)
	}
}

// recordSyncFailure keeps the failed step on the intent. A pending intent is
// closed out right away - nothing was created. An org_created one stays for
// the reconciliation sweep.
func (app *application) recordSyncFailure(l *logs.Log, intent model.SyncIntent, stepErr error) {
	if intent.Status == model.SyncIntentPending {
		intent.Status = model.SyncIntentCompensated
	}
	intent.Error = stepErr.Error()
	now := time.Now().UTC()
	intent.DateUpdated = &now
	if err := app.storage.SaveSyncIntent(intent); err != nil {
		l.WarnError(logutils.MessageActionError(logutils.ActionSave, model.TypeSyncIntent, nil), err)
	}
}
