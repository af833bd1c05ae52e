/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	customerrors "github.com/srk/consent-service/internal/system/errors"
	"github.com/srk/consent-service/internal/system/log"
)

const serverErrorPrefix = "Error: "

// HandleError writes err as a plain text response. Client errors answer with their own
// status and message; everything else is a 500 whose body starts with "Error: ".
func HandleError(w http.ResponseWriter, err error) {
	var clientError *customerrors.ClientError
	if ok := errors.As(err, &clientError); ok {
		WritePlainTextResponse(w, clientError.StatusCode, clientError.ErrorMessage.Message)
		return
	}

	var serverError *customerrors.ServerError
	if ok := errors.As(err, &serverError); ok {
		log.GetLogger().Error(err.Error(), log.TraceID(serverError.TraceID))
		WritePlainTextResponse(w, http.StatusInternalServerError, serverErrorPrefix+serverError.ErrorMessage.Detail())
		return
	}

	log.GetLogger().Error("Unexpected error while serving request", log.Error(err))
	WritePlainTextResponse(w, http.StatusInternalServerError, serverErrorPrefix+"Internal server error.")
}

// WriteJSONResponse writes data as a JSON body with the given status.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WritePlainTextResponse writes message as a text/plain body with the given status.
func WritePlainTextResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(message))
}
