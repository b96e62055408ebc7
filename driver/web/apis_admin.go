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
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"directory-building-block/core"
	"directory-building-block/core/model"

	"github.com/rokwire/logging-library-go/v2/logs"
	"github.com/rokwire/logging-library-go/v2/logutils"
)

// sweep skips intents newer than this unless told otherwise
const defaultSweepAgeMinutes = 30

// AdminApisHandler handles the operator APIs implementation
type AdminApisHandler struct {
	coreAPIs *core.APIs
}

func (h AdminApisHandler) sweepSyncIntents(l *logs.Log, r *http.Request, claims *Claims) logs.HTTPResponse {
	ageMinutes := defaultSweepAgeMinutes
	ageArg := r.URL.Query().Get("older_than_minutes")
	if ageArg != "" {
		parsed, err := strconv.Atoi(ageArg)
		if err != nil || parsed < 0 {
			return l.HTTPResponseErrorData(logutils.StatusInvalid, logutils.TypeQueryParam, logutils.StringArgs("older_than_minutes"), err, http.StatusBadRequest, false)
		}
		ageMinutes = parsed
	}

	result, err := h.coreAPIs.Administration.SweepSyncIntents(l, time.Duration(ageMinutes)*time.Minute)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionSave, model.TypeSyncIntent, nil, err, http.StatusInternalServerError, true)
	}

	response := sweepResponse{Examined: result.Examined, Completed: result.Completed,
		Compensated: result.Compensated, Stuck: result.Stuck}
	data, err := json.Marshal(response)
	if err != nil {
		return l.HTTPResponseErrorAction(logutils.ActionMarshal, logutils.TypeResponseBody, nil, err, http.StatusInternalServerError, false)
	}
	return l.HTTPResponseSuccessJSON(data)
}

// NewAdminApisHandler creates new admin Handler instance
func NewAdminApisHandler(coreAPIs *core.APIs) AdminApisHandler {
	return AdminApisHandler{coreAPIs: coreAPIs}
}
