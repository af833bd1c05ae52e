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

package services

import (
	"fmt"
	"net/http"

	"github.com/srk/consent-service/internal/consent/handler"
	"github.com/srk/consent-service/internal/consent/service"
	"github.com/srk/consent-service/internal/consent/store"
	"github.com/srk/consent-service/internal/system/constants"
	"github.com/srk/consent-service/internal/system/database/client"
	"github.com/srk/consent-service/internal/system/metrics"
)

type ConsentItemService struct {
	handler *handler.ConsentItemHandler
}

// NewConsentItemService wires the consent item store, service and handler over the shared
// document client and registers the routes.
func NewConsentItemService(mux *http.ServeMux, apiBasePath string, dbClient client.DocumentClientInterface,
	container string, m *metrics.Metrics) *ConsentItemService {

	itemStore := store.NewConsentItemStore(dbClient, container)
	instance := &ConsentItemService{
		handler: handler.NewConsentItemHandler(service.NewConsentItemService(itemStore, m), m),
	}
	instance.RegisterRoutes(mux, apiBasePath)
	return instance
}

func (s *ConsentItemService) RegisterRoutes(mux *http.ServeMux, apiBasePath string) {
	mux.HandleFunc(fmt.Sprintf("POST %s/%s", apiBasePath, constants.ConsentSearchApiPath), s.handler.SubmitConsentItem)
}
