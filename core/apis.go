package core

import (
	"directory-building-block/core/model"
	"time"

	"github.com/rokwire/logging-library-go/v2/logs"
)

// APIs exposes to the drivers adapters access to the core functionality
type APIs struct {
	Services       Services       //expose to the drivers adapters
	Webhooks       Webhooks       //expose to the drivers adapters
	Administration Administration //expose to the drivers adapters

	app *application
}

// Start starts the core part of the application
func (c *APIs) Start() {
	c.app.start()
}

// GetVersion gives the service version
func (c *APIs) GetVersion() string {
	return c.app.version
}

// NewCoreAPIs creates new CoreAPIs
func NewCoreAPIs(env string, version string, build string, storage Storage, identity IdentityProvider,
	records RecordsBackend, payments PaymentsProvider, cache Cache, notifier Notifier,
	operatorsEmail string, logger *logs.Logger) *APIs {
	application := application{env: env, version: version, build: build, storage: storage,
		identity: identity, records: records, payments: payments, cache: cache,
		notifier: notifier, operatorsEmail: operatorsEmail, logger: logger}

	servicesImpl := &servicesImpl{app: &application}
	webhooksImpl := &webhooksImpl{app: &application}
	administrationImpl := &administrationImpl{app: &application}

	coreAPIs := APIs{Services: servicesImpl, Webhooks: webhooksImpl,
		Administration: administrationImpl, app: &application}

	return &coreAPIs
}

///

// servicesImpl
type servicesImpl struct {
	app *application
}

func (s *servicesImpl) CreateCompleteOrganization(l *logs.Log, businessName string, adminUserID string, businessData model.BusinessData) (*model.OrganizationCreation, error) {
	return s.app.createCompleteOrganization(l, businessName, adminUserID, businessData)
}

func (s *servicesImpl) UpdateCompleteOrganization(l *logs.Log, organizationID string, update model.OrganizationUpdate) (*model.OrganizationUpdateStatus, error) {
	return s.app.updateCompleteOrganization(l, organizationID, update)
}

func (s *servicesImpl) GetUserCompleteOrganizations(l *logs.Log, userID string) ([]model.CompleteOrganization, error) {
	return s.app.getUserCompleteOrganizations(l, userID)
}

func (s *servicesImpl) GetCompleteOrganization(l *logs.Log, organizationID string) (*model.CompleteOrganization, error) {
	return s.app.getCompleteOrganization(l, organizationID)
}

func (s *servicesImpl) AddOrganizationMember(l *logs.Log, organizationID string, userID string, role string) error {
	return s.app.addOrganizationMember(l, organizationID, userID, role)
}

func (s *servicesImpl) RemoveOrganizationMember(l *logs.Log, organizationID string, userID string) error {
	return s.app.removeOrganizationMember(l, organizationID, userID)
}

func (s *servicesImpl) DeleteCompleteOrganization(l *logs.Log, organizationID string) error {
	return s.app.deleteCompleteOrganization(l, organizationID)
}

func (s *servicesImpl) GetDirectoryBusinesses(l *logs.Log) ([]model.BusinessRecord, error) {
	return s.app.getDirectoryBusinesses(l)
}

///

// webhooksImpl
type webhooksImpl struct {
	app *application
}

func (s *webhooksImpl) ProcessIdentityEvent(l *logs.Log, event model.IdentityEvent) error {
	return s.app.processIdentityEvent(l, event)
}

func (s *webhooksImpl) ProcessPaymentEvent(l *logs.Log, event model.PaymentEvent) error {
	return s.app.processPaymentEvent(l, event)
}

///

// administrationImpl
type administrationImpl struct {
	app *application
}

func (s *administrationImpl) SweepSyncIntents(l *logs.Log, olderThan time.Duration) (*model.SweepResult, error) {
	return s.app.sweepSyncIntents(l, olderThan)
}
