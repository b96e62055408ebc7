package core

import (
	"github.com/rokwire/logging-library-go/v2/logs"
)

// cache namespaces, keyed by entity type + id
const (
	cacheNamespaceOrganization string = "organization"
	cacheNamespaceBusiness     string = "business"
	cacheNamespaceUser         string = "user"
	cacheNamespaceCustomer     string = "customer"
	cacheNamespaceSubscription string = "subscription"
	cacheNamespaceDirectory    string = "directory"
)

// application represents the core application code based on hexagonal architecture
type application struct {
	env     string
	version string
	build   string

	storage  Storage
	identity IdentityProvider
	records  RecordsBackend
	payments PaymentsProvider
	cache    Cache
	notifier Notifier

	//where sweep reports go; empty disables notifications
	operatorsEmail string

	logger *logs.Logger
}

// start starts the core part of the application
func (app *application) start() {
	if !app.cache.IsBackingStoreAvailable() {
		app.logger.Warn("cache backing store unavailable - running on the in-memory fallback")
	}
}
