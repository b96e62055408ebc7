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

package main

import (
	"strconv"

	"directory-building-block/core"
	"directory-building-block/driven/cache"
	"directory-building-block/driven/emailer"
	"directory-building-block/driven/identity"
	"directory-building-block/driven/payments"
	"directory-building-block/driven/records"
	"directory-building-block/driven/storage"
	"directory-building-block/driver/web"

	"github.com/rokwire/core-auth-library-go/v3/envloader"
	"github.com/rokwire/logging-library-go/v2/logs"
)

var (
	// Version : version of this executable
	Version string
	// Build : build date of this executable
	Build string
)

func main() {
	if len(Version) == 0 {
		Version = "dev"
	}

	serviceID := "directory"

	loggerOpts := logs.LoggerOpts{SuppressRequests: logs.NewStandardHealthCheckHTTPRequestProperties(serviceID + "/version")}
	logger := logs.NewLogger(serviceID, &loggerOpts)
	envLoader := envloader.NewEnvLoader(Version, logger)

	level := envLoader.GetAndLogEnvVar("DIRECTORY_LOG_LEVEL", false, false)
	logLevel := logs.LogLevelFromString(level)
	if logLevel != nil {
		logger.SetLevel(*logLevel)
	}

	env := envLoader.GetAndLogEnvVar("DIRECTORY_ENVIRONMENT", true, false) //local, dev, staging, prod
	port := envLoader.GetAndLogEnvVar("DIRECTORY_PORT", false, false)
	//Default port of 80
	if port == "" {
		port = "80"
	}
	host := envLoader.GetAndLogEnvVar("DIRECTORY_HOST", true, false)

	// mongoDB adapter
	mongoDBAuth := envLoader.GetAndLogEnvVar("DIRECTORY_MONGO_AUTH", true, true)
	mongoDBName := envLoader.GetAndLogEnvVar("DIRECTORY_MONGO_DATABASE", true, false)
	mongoTimeout := envLoader.GetAndLogEnvVar("DIRECTORY_MONGO_TIMEOUT", false, false)
	storageAdapter := storage.NewStorageAdapter(mongoDBAuth, mongoDBName, mongoTimeout, logger)
	err := storageAdapter.Start()
	if err != nil {
		logger.Fatalf("Cannot start the mongoDB adapter: %v", err)
	}

	//cache - durable by default, in-process when requested
	var cacheAdapter core.Cache
	cacheMode := envLoader.GetAndLogEnvVar("DIRECTORY_CACHE_MODE", false, false)
	if cacheMode == "memory" {
		cacheAdapter = cache.NewMemoryAdapter()
	} else {
		cacheAdapter = storage.NewCacheAdapter(storageAdapter, logger)
	}

	//identity provider adapter
	identityHost := envLoader.GetAndLogEnvVar("DIRECTORY_IDENTITY_HOST", true, false)
	identityAPIKey := envLoader.GetAndLogEnvVar("DIRECTORY_IDENTITY_API_KEY", true, true)
	identityWebhookSecret := envLoader.GetAndLogEnvVar("DIRECTORY_IDENTITY_WEBHOOK_SECRET", true, true)
	identityAdapter := identity.NewIdentityAdapter(identityHost, identityAPIKey)

	//records backend adapter
	recordsHost := envLoader.GetAndLogEnvVar("DIRECTORY_RECORDS_HOST", true, false)
	recordsAPIKey := envLoader.GetAndLogEnvVar("DIRECTORY_RECORDS_API_KEY", true, true)
	recordsBaseID := envLoader.GetAndLogEnvVar("DIRECTORY_RECORDS_BASE_ID", true, false)
	recordsTableID := envLoader.GetAndLogEnvVar("DIRECTORY_RECORDS_TABLE_ID", true, false)
	recordsAdapter := records.NewRecordsAdapter(recordsHost, recordsAPIKey, recordsBaseID, recordsTableID)

	//payments adapter
	paymentsSecretKey := envLoader.GetAndLogEnvVar("DIRECTORY_PAYMENTS_SECRET_KEY", true, true)
	paymentsWebhookSecret := envLoader.GetAndLogEnvVar("DIRECTORY_PAYMENTS_WEBHOOK_SECRET", true, true)
	paymentsAdapter := payments.NewPaymentsAdapter(paymentsSecretKey)

	//emailer adapter
	smtpHost := envLoader.GetAndLogEnvVar("DIRECTORY_SMTP_HOST", false, false)
	smtpPort := envLoader.GetAndLogEnvVar("DIRECTORY_SMTP_PORT", false, false)
	smtpUser := envLoader.GetAndLogEnvVar("DIRECTORY_SMTP_USER", false, true)
	smtpPassword := envLoader.GetAndLogEnvVar("DIRECTORY_SMTP_PASSWORD", false, true)
	smtpFrom := envLoader.GetAndLogEnvVar("DIRECTORY_SMTP_EMAIL_FROM", false, false)
	smtpPortNum, _ := strconv.Atoi(smtpPort)
	emailerAdapter := emailer.NewEmailerAdapter(smtpHost, smtpPortNum, smtpUser, smtpPassword, smtpFrom)
	operatorsEmail := envLoader.GetAndLogEnvVar("DIRECTORY_OPERATORS_EMAIL", false, false)

	//web adapter auth
	sessionSecret := envLoader.GetAndLogEnvVar("DIRECTORY_SESSION_SECRET", true, true)
	adminAPIKey := envLoader.GetAndLogEnvVar("DIRECTORY_ADMIN_API_KEY", true, true)

	//application
	coreAPIs := core.NewCoreAPIs(env, Version, Build, storageAdapter, identityAdapter, recordsAdapter,
		paymentsAdapter, cacheAdapter, emailerAdapter, operatorsEmail, logger)
	coreAPIs.Start()

	//web adapter
	webAdapter := web.NewWebAdapter(coreAPIs, host, port, sessionSecret, adminAPIKey,
		identityWebhookSecret, paymentsWebhookSecret, logger)
	webAdapter.Start()
}
