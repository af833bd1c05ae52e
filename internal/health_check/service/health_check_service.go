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

package service

import (
	"context"
	"fmt"

	"github.com/srk/consent-service/internal/system/database/client"
	"github.com/srk/consent-service/internal/system/errors"
)

// HealthCheckServiceInterface defines the service interface.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) error
}

// HealthCheckService is the default implementation.
type HealthCheckService struct {
	client client.DocumentClientInterface
}

// NewHealthCheckService returns a readiness checker over the shared document client.
func NewHealthCheckService(dbClient client.DocumentClientInterface) *HealthCheckService {
	return &HealthCheckService{client: dbClient}
}

func (h *HealthCheckService) CheckReadiness(ctx context.Context) error {
	if h.client == nil {
		return errors.NewServerError(errors.DOCUMENT_STORE_UNAVAILABLE, fmt.Errorf("document store client not initialized"))
	}

	if err := h.client.Ping(ctx); err != nil {
		return errors.NewServerError(errors.ErrorMessage{
			Code:        errors.DOCUMENT_STORE_UNAVAILABLE.Code,
			Message:     errors.DOCUMENT_STORE_UNAVAILABLE.Message,
			Description: fmt.Sprintf("%s %v", errors.DOCUMENT_STORE_UNAVAILABLE.Message, err),
		}, err)
	}
	return nil
}
