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
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/srk/consent-service/internal/consent/model"
	"github.com/srk/consent-service/internal/consent/store"
	"github.com/srk/consent-service/internal/system/constants"
	traceContext "github.com/srk/consent-service/internal/system/context"
	"github.com/srk/consent-service/internal/system/database/client"
	errors2 "github.com/srk/consent-service/internal/system/errors"
	"github.com/srk/consent-service/internal/system/log"
	"github.com/srk/consent-service/internal/system/metrics"
)

// ConsentItemServiceInterface defines the service interface.
type ConsentItemServiceInterface interface {
	SubmitConsentItem(ctx context.Context, item *model.ConsentItem) (*model.ConsentItem, error)
}

// ConsentItemService is the default implementation of ConsentItemServiceInterface.
type ConsentItemService struct {
	store      store.ConsentItemStoreInterface
	metrics    *metrics.Metrics
	generateID func() string
}

// NewConsentItemService returns a service persisting through the given store. metrics may be nil.
func NewConsentItemService(itemStore store.ConsentItemStoreInterface, m *metrics.Metrics) *ConsentItemService {
	return &ConsentItemService{
		store:      itemStore,
		metrics:    m,
		generateID: generateConsentItemID,
	}
}

// SubmitConsentItem assigns a new identifier to the item and persists it. On success the
// copy confirmed by the store is returned. Failures are *errors.ClientError for an absent
// item and *errors.ServerError otherwise, told apart by their error code. The HTTP handler
// rejects absent bodies itself; the nil check covers callers that bypass it.
func (s *ConsentItemService) SubmitConsentItem(ctx context.Context, item *model.ConsentItem) (*model.ConsentItem, error) {

	traceID := traceContext.GetOrGenerateTraceID(ctx)
	logger := log.GetLogger().With(log.TraceID(traceID))

	if item == nil {
		s.metrics.IncrementSubmissions(constants.OutcomeInvalidRequest)
		return nil, errors2.NewClientErrorWithTraceID(errors2.INVALID_CONSENT_ITEM_REQUEST, http.StatusBadRequest, traceID)
	}

	if item.ID != "" {
		logger.Debug("Overwriting caller supplied consent item id", log.String("supplied_id", item.ID))
	}
	item.ID = s.generateID()

	start := time.Now()
	response, err := s.store.CreateItem(ctx, item)
	s.metrics.ObserveStoreCreateLatency(time.Since(start).Seconds())

	if err != nil {
		message := storeErrorMessage(err)
		logger.Error("Document store error: "+message, log.String("id", item.ID))
		s.metrics.IncrementSubmissions(constants.OutcomeStoreFailure)
		return nil, errors2.NewServerErrorWithTraceID(errors2.ErrorMessage{
			Code:        errors2.CONSENT_ITEM_STORE_FAILURE.Code,
			Message:     errors2.CONSENT_ITEM_STORE_FAILURE.Message,
			Description: fmt.Sprintf("%s %s", errors2.CONSENT_ITEM_STORE_FAILURE.Message, message),
		}, err, traceID)
	}

	logger.Info(fmt.Sprintf("Document store response status code: %d", response.StatusCode),
		log.String("id", item.ID))

	if response.StatusCode != constants.StoreStatusCreated {
		logger.Error(fmt.Sprintf("Failed to create item in document store. Status Code: %d", response.StatusCode),
			log.String("id", item.ID))
		s.metrics.IncrementSubmissions(constants.OutcomeRejected)
		return nil, errors2.NewServerErrorWithTraceID(errors2.ErrorMessage{
			Code:    errors2.CONSENT_ITEM_CREATE_REJECTED.Code,
			Message: errors2.CONSENT_ITEM_CREATE_REJECTED.Message,
			Description: fmt.Sprintf("%s Status Code: %d", errors2.CONSENT_ITEM_CREATE_REJECTED.Message,
				response.StatusCode),
		}, nil, traceID)
	}

	if response.Item == nil {
		logger.Error("Item creation succeeded but returned a null item.", log.String("id", item.ID))
		s.metrics.IncrementSubmissions(constants.OutcomeEmptyResponse)
		return nil, errors2.NewServerErrorWithTraceID(errors2.CONSENT_ITEM_EMPTY_RESPONSE, nil, traceID)
	}

	logger.Audit(log.AuditEvent{
		InitiatorType: log.InitiatorTypeUser,
		TargetID:      response.Item.ID,
		TargetType:    log.TargetTypeConsentItem,
		ActionID:      log.ActionAddConsentItem,
		TraceID:       traceID,
	})
	s.metrics.IncrementSubmissions(constants.OutcomeCreated)
	return response.Item, nil
}

// storeErrorMessage returns the message reported by the document store for err.
func storeErrorMessage(err error) string {
	var storeErr *client.StoreError
	if errors.As(err, &storeErr) && storeErr.Message != "" {
		return storeErr.Message
	}
	return err.Error()
}

// generateConsentItemID generates a random v4 UUID.
func generateConsentItemID() string {
	return uuid.New().String()
}
