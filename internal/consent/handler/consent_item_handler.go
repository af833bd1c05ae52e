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

package handler

import (
	"net/http"

	"github.com/srk/consent-service/internal/consent/model"
	"github.com/srk/consent-service/internal/consent/service"
	"github.com/srk/consent-service/internal/system/constants"
	traceContext "github.com/srk/consent-service/internal/system/context"
	"github.com/srk/consent-service/internal/system/errors"
	"github.com/srk/consent-service/internal/system/log"
	"github.com/srk/consent-service/internal/system/metrics"
	"github.com/srk/consent-service/internal/system/utils"
)

type ConsentItemHandler struct {
	service service.ConsentItemServiceInterface
	metrics *metrics.Metrics
}

func NewConsentItemHandler(svc service.ConsentItemServiceInterface, m *metrics.Metrics) *ConsentItemHandler {
	return &ConsentItemHandler{
		service: svc,
		metrics: m,
	}
}

// SubmitConsentItem handles POST /v1.0/consent/search
func (h *ConsentItemHandler) SubmitConsentItem(w http.ResponseWriter, r *http.Request) {

	traceID := traceContext.GetOrGenerateTraceID(r.Context())
	ctx := traceContext.WithTraceID(r.Context(), traceID)
	logger := log.GetLogger().With(log.TraceID(traceID))
	logger.Info("Processing request to write a consent item to the document store...")

	var item *model.ConsentItem
	err := utils.DecodeJSONBody(r.Body, &item)
	if err != nil || item == nil {
		description := "Request body for consent item is null."
		if err != nil {
			description = utils.HandleDecodeError(err, "consent item")
		}
		logger.Info("Rejected consent item request", log.String("reason", description))
		h.metrics.IncrementSubmissions(constants.OutcomeInvalidRequest)
		clientError := errors.NewClientErrorWithTraceID(errors.ErrorMessage{
			Code:        errors.INVALID_CONSENT_ITEM_REQUEST.Code,
			Message:     errors.INVALID_CONSENT_ITEM_REQUEST.Message,
			Description: description,
		}, http.StatusBadRequest, traceID)
		utils.HandleError(w, clientError)
		return
	}

	created, err := h.service.SubmitConsentItem(ctx, item)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	logger.Info("Consent item stored", log.String("id", created.ID))
	utils.WriteJSONResponse(w, http.StatusOK, created)
}
