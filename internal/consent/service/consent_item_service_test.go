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
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/srk/consent-service/internal/consent/model"
	"github.com/srk/consent-service/internal/consent/store"
	"github.com/srk/consent-service/internal/system/constants"
	traceContext "github.com/srk/consent-service/internal/system/context"
	"github.com/srk/consent-service/internal/system/database/client"
	errors2 "github.com/srk/consent-service/internal/system/errors"
	"github.com/srk/consent-service/internal/system/log"
	"github.com/srk/consent-service/internal/system/metrics"
)

type MockConsentItemStore struct {
	mock.Mock
}

func (m *MockConsentItemStore) CreateItem(ctx context.Context, item *model.ConsentItem) (*store.CreateItemResponse, error) {
	args := m.Called(ctx, item)
	if fn, ok := args.Get(0).(func(*model.ConsentItem) *store.CreateItemResponse); ok {
		return fn(item), args.Error(1)
	}
	response, _ := args.Get(0).(*store.CreateItemResponse)
	return response, args.Error(1)
}

// echoStored answers like a store that persisted the item and added its timestamp.
func echoStored(item *model.ConsentItem) *store.CreateItemResponse {
	fields := map[string]interface{}{"_ts": int64(1700000000)}
	for key, value := range item.Fields {
		fields[key] = value
	}
	return &store.CreateItemResponse{
		StatusCode: constants.StoreStatusCreated,
		Item:       &model.ConsentItem{ID: item.ID, Fields: fields},
	}
}

func newTestService(t *testing.T) (*ConsentItemService, *MockConsentItemStore, *metrics.Metrics) {
	t.Helper()
	_ = log.Init("DEBUG")
	mockStore := new(MockConsentItemStore)
	m := metrics.New()
	return NewConsentItemService(mockStore, m), mockStore, m
}

func TestSubmitConsentItem_Created(t *testing.T) {
	svc, mockStore, m := newTestService(t)

	mockStore.On("CreateItem", mock.Anything, mock.AnythingOfType("*model.ConsentItem")).
		Return(echoStored, nil).Once()

	item := &model.ConsentItem{Fields: map[string]interface{}{"purpose": "marketing"}}
	created, err := svc.SubmitConsentItem(context.Background(), item)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, item.ID, created.ID, "stored copy should carry the assigned id")
	assert.Equal(t, "marketing", created.Fields["purpose"])
	assert.Equal(t, int64(1700000000), created.Fields["_ts"])
	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err, "assigned id should be a UUID")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ConsentSubmissions.WithLabelValues(constants.OutcomeCreated)))

	mockStore.AssertExpectations(t)
}

func TestSubmitConsentItem_OverwritesCallerID(t *testing.T) {
	svc, mockStore, _ := newTestService(t)

	mockStore.On("CreateItem", mock.Anything, mock.MatchedBy(func(item *model.ConsentItem) bool {
		return item.ID != "" && item.ID != "caller-chosen"
	})).Return(echoStored, nil).Once()

	item := &model.ConsentItem{ID: "caller-chosen", Fields: map[string]interface{}{"purpose": "analytics"}}
	created, err := svc.SubmitConsentItem(context.Background(), item)

	require.NoError(t, err)
	assert.NotEqual(t, "caller-chosen", created.ID)
	assert.NotEmpty(t, created.ID)
	mockStore.AssertExpectations(t)
}

func TestSubmitConsentItem_IdenticalPayloadsGetDistinctIDs(t *testing.T) {
	svc, mockStore, _ := newTestService(t)

	mockStore.On("CreateItem", mock.Anything, mock.AnythingOfType("*model.ConsentItem")).
		Return(echoStored, nil).Twice()

	first, err := svc.SubmitConsentItem(context.Background(),
		&model.ConsentItem{Fields: map[string]interface{}{"purpose": "marketing"}})
	require.NoError(t, err)
	second, err := svc.SubmitConsentItem(context.Background(),
		&model.ConsentItem{Fields: map[string]interface{}{"purpose": "marketing"}})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	mockStore.AssertNumberOfCalls(t, "CreateItem", 2)
}

func TestSubmitConsentItem_UsesInjectedIDGenerator(t *testing.T) {
	svc, mockStore, _ := newTestService(t)
	svc.generateID = func() string { return "fixed-id" }

	mockStore.On("CreateItem", mock.Anything, mock.MatchedBy(func(item *model.ConsentItem) bool {
		return item.ID == "fixed-id"
	})).Return(echoStored, nil).Once()

	created, err := svc.SubmitConsentItem(context.Background(), &model.ConsentItem{})

	require.NoError(t, err)
	assert.Equal(t, "fixed-id", created.ID)
	mockStore.AssertExpectations(t)
}

func TestSubmitConsentItem_NilItem(t *testing.T) {
	svc, mockStore, m := newTestService(t)

	created, err := svc.SubmitConsentItem(context.Background(), nil)

	assert.Nil(t, created)
	var clientError *errors2.ClientError
	require.ErrorAs(t, err, &clientError)
	assert.Equal(t, http.StatusBadRequest, clientError.StatusCode)
	assert.True(t, errors2.HasCode(err, errors2.INVALID_CONSENT_ITEM_REQUEST))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ConsentSubmissions.WithLabelValues(constants.OutcomeInvalidRequest)))
	mockStore.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestSubmitConsentItem_CreatedWithoutItem(t *testing.T) {
	svc, mockStore, m := newTestService(t)

	mockStore.On("CreateItem", mock.Anything, mock.Anything).
		Return(&store.CreateItemResponse{StatusCode: constants.StoreStatusCreated}, nil).Once()

	created, err := svc.SubmitConsentItem(context.Background(),
		&model.ConsentItem{Fields: map[string]interface{}{"purpose": "marketing"}})

	assert.Nil(t, created)
	var serverError *errors2.ServerError
	require.ErrorAs(t, err, &serverError)
	assert.Equal(t, errors2.CONSENT_ITEM_EMPTY_RESPONSE.Code, serverError.Code)
	assert.Contains(t, serverError.Detail(), "returned null")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ConsentSubmissions.WithLabelValues(constants.OutcomeEmptyResponse)))
	mockStore.AssertExpectations(t)
}

func TestSubmitConsentItem_RejectedStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"conflict", constants.StoreStatusConflict},
		{"ok instead of created", http.StatusOK},
		{"throttled", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockStore, m := newTestService(t)
			mockStore.On("CreateItem", mock.Anything, mock.Anything).
				Return(&store.CreateItemResponse{StatusCode: tt.statusCode}, nil).Once()

			created, err := svc.SubmitConsentItem(context.Background(), &model.ConsentItem{})

			assert.Nil(t, created)
			var serverError *errors2.ServerError
			require.ErrorAs(t, err, &serverError)
			assert.Equal(t, errors2.CONSENT_ITEM_CREATE_REJECTED.Code, serverError.Code)
			assert.Contains(t, serverError.Detail(), fmt.Sprintf("Status Code: %d", tt.statusCode))
			assert.Equal(t, float64(1), testutil.ToFloat64(m.ConsentSubmissions.WithLabelValues(constants.OutcomeRejected)))
		})
	}
}

func TestSubmitConsentItem_StoreFailure(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		expected string
	}{
		{"plain error", stderrors.New("timeout"), "Document store operation failed. timeout"},
		{"store error", &client.StoreError{Message: "request rate is large", StatusCode: 16500},
			"Document store operation failed. request rate is large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockStore, m := newTestService(t)
			mockStore.On("CreateItem", mock.Anything, mock.Anything).Return(nil, tt.storeErr).Once()

			created, err := svc.SubmitConsentItem(context.Background(), &model.ConsentItem{})

			assert.Nil(t, created)
			var serverError *errors2.ServerError
			require.ErrorAs(t, err, &serverError)
			assert.Equal(t, errors2.CONSENT_ITEM_STORE_FAILURE.Code, serverError.Code)
			assert.Equal(t, tt.expected, serverError.Detail())
			assert.ErrorIs(t, err, tt.storeErr)
			assert.Equal(t, float64(1), testutil.ToFloat64(m.ConsentSubmissions.WithLabelValues(constants.OutcomeStoreFailure)))
		})
	}
}

func TestSubmitConsentItem_PropagatesTraceID(t *testing.T) {
	svc, mockStore, _ := newTestService(t)
	mockStore.On("CreateItem", mock.Anything, mock.Anything).Return(nil, stderrors.New("timeout")).Once()

	ctx := traceContext.WithTraceID(context.Background(), "trace-123")
	_, err := svc.SubmitConsentItem(ctx, &model.ConsentItem{})

	var serverError *errors2.ServerError
	require.ErrorAs(t, err, &serverError)
	assert.Equal(t, "trace-123", serverError.TraceID)
}

func TestSubmitConsentItem_NilMetrics(t *testing.T) {
	_ = log.Init("DEBUG")
	mockStore := new(MockConsentItemStore)
	svc := NewConsentItemService(mockStore, nil)
	mockStore.On("CreateItem", mock.Anything, mock.Anything).Return(echoStored, nil).Once()

	created, err := svc.SubmitConsentItem(context.Background(), &model.ConsentItem{})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}
