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

package managers

import (
	"fmt"
	"net/http"

	"github.com/srk/consent-service/internal/system/constants"
	"github.com/srk/consent-service/internal/system/database/client"
	"github.com/srk/consent-service/internal/system/metrics"
	"github.com/srk/consent-service/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices(apiBasePath string) error
}

type ServiceManager struct {
	mux       *http.ServeMux
	dbClient  client.DocumentClientInterface
	container string
	metrics   *metrics.Metrics
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, dbClient client.DocumentClientInterface, container string,
	m *metrics.Metrics) ServiceManagerInterface {

	return &ServiceManager{
		mux:       mux,
		dbClient:  dbClient,
		container: container,
		metrics:   m,
	}
}

func (sm *ServiceManager) RegisterServices(apiBasePath string) error {

	if sm.dbClient == nil {
		return fmt.Errorf("document store client is required to register services")
	}

	services.NewConsentItemService(sm.mux, apiBasePath, sm.dbClient, sm.container, sm.metrics)
	services.NewHealthService(sm.mux, sm.dbClient)

	if sm.metrics != nil {
		sm.mux.Handle(fmt.Sprintf("GET %s", constants.MetricsApiPath), sm.metrics.Handler())
	}
	return nil
}
