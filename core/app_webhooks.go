package core

import (
	"directory-building-block/core/model"
	"encoding/json"

	"github.com/rokwire/logging-library-go/v2/errors"
	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
	"gopkg.in/go-playground/validator.v9"
)

const (
	//identity user metadata keys written by the reconcilers
	userMetadataCustomerID         string = "stripeCustomerId"
	userMetadataActiveSubscription string = "hasActiveSubscription"
)

// processIdentityEvent dispatches a verified identity provider event. Events
// arrive at least once and possibly out of order - every branch overwrites
// state rather than accumulating it, so re-delivery is harmless.
func (app *application) processIdentityEvent(l *logs.Log, event model.IdentityEvent) error {
	switch event.Type {
	case model.EventOrganizationCreated, model.EventOrganizationUpdated:
		payload, err := decodeIdentityPayload[model.IdentityOrganizationPayload](event)
		if err != nil {
			return err
		}
		err = app.mirrorOrganization(l, *payload)
		app.invalidateOrganization(payload.ID)
		return err
	case model.EventOrganizationDeleted:
		payload, err := decodeIdentityPayload[model.IdentityOrganizationPayload](event)
		if err != nil {
			return err
		}
		//the business record is retained on organization deletion
		app.invalidateOrganization(payload.ID)
		return nil
	case model.EventOrgMembershipCreated, model.EventOrgMembershipDeleted:
		payload, err := decodeIdentityPayload[model.IdentityMembershipPayload](event)
		if err != nil {
			return err
		}
		app.invalidateOrganization(payload.OrganizationID)
		app.cache.Invalidate(cacheNamespaceUser, payload.UserID)
		return nil
	case model.EventUserCreated, model.EventUserUpdated:
		payload, err := decodeIdentityPayload[model.IdentityUserPayload](event)
		if err != nil {
			return err
		}
		err = app.ensurePaymentsCustomer(l, *payload)
		app.cache.Invalidate(cacheNamespaceUser, payload.ID)
		return err
	default:
		//unrecognized types are observed, not failed - vendors add event types freely
		l.Warnf("ignoring unrecognized identity event type %s", event.Type)
		return nil
	}
}

// processPaymentEvent dispatches a verified payment provider event
func (app *application) processPaymentEvent(l *logs.Log, event model.PaymentEvent) error {
	//every event drops the affected cache entries, whatever the sub-type
	if event.CustomerID != "" {
		app.cache.Invalidate(cacheNamespaceCustomer, event.CustomerID)
	}
	if event.SubscriptionID != "" {
		app.cache.Invalidate(cacheNamespaceSubscription, event.SubscriptionID)
	}

	switch event.Type {
	case model.EventCheckoutSessionCompleted:
		if event.UserID == "" || event.CustomerID == "" {
			return errors.ErrorData(logutils.StatusMissing, model.TypePaymentEvent,
				&logutils.FieldArgs{"event": event.ID, "user_id": event.UserID, "customer_id": event.CustomerID})
		}
		err := app.identity.UpdateUserMetadata(event.UserID, map[string]string{
			userMetadataCustomerID:         event.CustomerID,
			userMetadataActiveSubscription: "true",
		})
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionUpdate, "user metadata",
				&logutils.FieldArgs{"user_id": event.UserID}, err)
		}
		app.cache.Invalidate(cacheNamespaceUser, event.UserID)
		return nil
	case model.EventSubscriptionUpdated, model.EventSubscriptionDeleted,
		model.EventInvoicePaymentSucceeded, model.EventInvoicePaymentFailed:
		//intentionally inert - logged for observability, kept as extension points
		l.Infof("payment event %s (%s) - no state change", event.ID, event.Type)
		return nil
	default:
		l.Warnf("ignoring unrecognized payment event type %s", event.Type)
		return nil
	}
}

// mirrorOrganization makes the records backend reflect an organization change
// coming from the identity provider side. Creation is only mirrored when no
// record exists yet, so re-delivery cannot duplicate rows.
func (app *application) mirrorOrganization(l *logs.Log, payload model.IdentityOrganizationPayload) error {
	record, err := app.records.FindBusinessRecordByOrganization(payload.ID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, model.TypeBusinessRecord,
			&logutils.FieldArgs{"organization_id": payload.ID}, err)
	}

	if record == nil {
		created, err := app.records.CreateBusinessRecord(model.BusinessRecord{OrganizationID: payload.ID,
			Name: payload.Name, Slug: payload.Slug, Status: model.BusinessStatusPending})
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionCreate, model.TypeBusinessRecord,
				&logutils.FieldArgs{"organization_id": payload.ID}, err)
		}
		err = app.identity.SetOrganizationMetadata(payload.ID, map[string]string{model.OrgMetadataBusinessRecordID: created.ID})
		if err != nil {
			return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeOrganization,
				&logutils.FieldArgs{"id": payload.ID}, err)
		}
		return nil
	}

	name := payload.Name
	slug := payload.Slug
	var namePtr, slugPtr *string
	if name != "" {
		namePtr = &name
	}
	if slug != "" {
		slugPtr = &slug
	}
	err = app.records.UpdateBusinessRecord(record.ID, namePtr, slugPtr, nil)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, model.TypeBusinessRecord,
			&logutils.FieldArgs{"id": record.ID}, err)
	}
	return nil
}

// ensurePaymentsCustomer guarantees the identity user has a payments customer
// linked in its metadata. Overwrite semantics - a second delivery finds the
// customer id already present and does nothing.
func (app *application) ensurePaymentsCustomer(l *logs.Log, payload model.IdentityUserPayload) error {
	metadata, err := app.identity.FindUserMetadata(payload.ID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionFind, "user metadata",
			&logutils.FieldArgs{"user_id": payload.ID}, err)
	}
	if metadata[userMetadataCustomerID] != "" {
		return nil
	}

	customerID, err := app.payments.CreateCustomer(payload.Email, payload.ID)
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionCreate, model.TypePaymentsCustomer,
			&logutils.FieldArgs{"user_id": payload.ID}, err)
	}

	err = app.identity.UpdateUserMetadata(payload.ID, map[string]string{userMetadataCustomerID: customerID})
	if err != nil {
		return errors.WrapErrorAction(logutils.ActionUpdate, "user metadata",
			&logutils.FieldArgs{"user_id": payload.ID}, err)
	}
	return nil
}

func (app *application) invalidateOrganization(organizationID string) {
	app.cache.Invalidate(cacheNamespaceOrganization, organizationID)
	app.cache.Invalidate(cacheNamespaceDirectory, directoryVisibleKey)
}

// decodeIdentityPayload unmarshals and validates the typed data of an event
func decodeIdentityPayload[T any](event model.IdentityEvent) (*T, error) {
	var payload T
	err := json.Unmarshal(event.Data, &payload)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionUnmarshal, model.TypeIdentityEvent,
			&logutils.FieldArgs{"type": event.Type}, err)
	}

	validate := validator.New()
	err = validate.Struct(payload)
	if err != nil {
		return nil, errors.WrapErrorAction(logutils.ActionValidate, model.TypeIdentityEvent,
			&logutils.FieldArgs{"type": event.Type}, err)
	}
	return &payload, nil
}
