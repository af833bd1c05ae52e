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

	"github.com/srk/consent-service/internal/health_check/handler"
	"github.com/srk/consent-service/internal/health_check/service"
	"github.com/srk/consent-service/internal/system/constants"
	"github.com/srk/consent-service/internal/system/database/client"
)

// HealthService handles routing for health and readiness endpoints.
type HealthService struct {
	handler *handler.HealthHandler
}

// NewHealthService creates a new HealthService instance and registers its routes.
func NewHealthService(mux *http.ServeMux, dbClient client.DocumentClientInterface) *HealthService {
	instance := &HealthService{
		handler: handler.NewHealthHandler(service.NewHealthCheckService(dbClient)),
	}
	instance.RegisterRoutes(mux)
	return instance
}

func (s *HealthService) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc(fmt.Sprintf("GET %s", constants.HealthApiPath), s.handler.HandleHealth)
	mux.HandleFunc(fmt.Sprintf("GET %s", constants.ReadinessApiPath), s.handler.HandleReadiness)
}
