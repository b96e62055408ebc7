package core

import (
	"directory-building-block/core/model"
	"fmt"
	"strings"
	"time"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// sweepSyncIntents finds organization creations stuck between the identity
// provider and the records backend and finishes or abandons them. Safe to run
// repeatedly - every step overwrites state it may already have written.
func (app *application) sweepSyncIntents(l *logs.Log, olderThan time.Duration) (*model.SweepResult, error) {
	before := time.Now().UTC().Add(-olderThan)
	intents, err := app.storage.FindStuckSyncIntents(before)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionFind, model.TypeSyncIntent, nil, err)
	}

	result := model.SweepResult{Examined: len(intents)}
	for _, intent := range intents {
		switch intent.Status {
		case model.SyncIntentPending:
			//no vendor call ever succeeded - close the intent out
			app.recordSyncFailure(l, intent, fmt.Errorf("abandoned by sweep"))
			result.Compensated = append(result.Compensated, intent.ID)
		case model.SyncIntentOrgCreated:
			resolved, err := app.resumeSyncIntent(l, intent)
			if err != nil {
				l.WarnError(logutils.MessageActionError(logutils.ActionUpdate, model.TypeSyncIntent, nil), err)
				result.Stuck = append(result.Stuck, intent.ID)
				continue
			}
			if resolved {
				result.Completed = append(result.Completed, intent.ID)
			} else {
				result.Compensated = append(result.Compensated, intent.ID)
			}
		}
	}

	app.notifySweepResult(l, result)
	return &result, nil
}

// resumeSyncIntent finishes the saga of an intent stuck after organization
// creation. Returns true when the saga completed, false when it was
// compensated because the organization no longer exists.
func (app *application) resumeSyncIntent(l *logs.Log, intent model.SyncIntent) (bool, error) {
	organization, err := app.identity.FindOrganization(intent.OrganizationID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeOrganization,
			&logutils.FieldArgs{"id": intent.OrganizationID}, err)
	}
	if organization == nil {
		//someone deleted the organization meanwhile - nothing left to finish
		intent.Status = model.SyncIntentCompensated
		now := time.Now().UTC()
		intent.DateUpdated = &now
		if err := app.storage.SaveSyncIntent(intent); err != nil {
			l.WarnError(logutils.MessageActionError(logutils.ActionSave, model.TypeSyncIntent, nil), err)
		}
		return false, nil
	}

	record, err := app.records.FindBusinessRecordByOrganization(intent.OrganizationID)
	if err != nil {
		return false, errors.WrapErrorAction(logutils.ActionFind, model.TypeBusinessRecord,
			&logutils.FieldArgs{"organization_id": intent.OrganizationID}, err)
	}
	if record == nil {
		created, err := app.records.CreateBusinessRecord(model.BusinessRecord{OrganizationID: organization.ID,
			Name: organization.Name, Slug: organization.Slug, Status: model.BusinessStatusPending})
		if err != nil {
			return false, errors.WrapErrorAction(logutils.ActionCreate, model.TypeBusinessRecord,
				&logutils.FieldArgs{"organization_id": organization.ID}, err)
		}
		record = created
	}

	if organization.BusinessRecordID() != record.ID {
		err = app.identity.SetOrganizationMetadata(organization.ID, map[string]string{model.OrgMetadataBusinessRecordID: record.ID})
		if err != nil {
			return false, errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization,
				&logutils.FieldArgs{"id": organization.ID}, err)
		}
	}

	intent.BusinessRecordID = record.ID
	intent.Error = ""
	app.advanceSyncIntent(l, &intent, model.SyncIntentCompleted)

	app.invalidateOrganization(organization.ID)
	return true, nil
}

func (app *application) notifySweepResult(l *logs.Log, result model.SweepResult) {
	if app.notifier == nil || app.operatorsEmail == "" {
		return
	}
	if !result.HasStuck() {
		return
	}

	subject := fmt.Sprintf("[directory] %d sync intents stuck after sweep", len(result.Stuck))
	body := fmt.Sprintf("Examined: %d\nCompleted: %d\nCompensated: %d\nStuck intent ids:\n%s\n",
		result.Examined, len(result.Completed), len(result.Compensated), strings.Join(result.Stuck, "\n"))
	err := app.notifier.Send(app.operatorsEmail, subject, body, nil)
	if err != nil {
		l.WarnError(logutils.MessageActionError(logutils.ActionSend, "sweep notification", nil), err)
	}
}
