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
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	customerrors "github.com/srk/consent-service/internal/system/errors"
	"github.com/srk/consent-service/internal/system/log"
)

func TestDecodeJSONBody(t *testing.T) {
	var target map[string]interface{}

	require.NoError(t, DecodeJSONBody(strings.NewReader(`{"a":1}`), &target))
	assert.Equal(t, float64(1), target["a"])

	assert.ErrorIs(t, DecodeJSONBody(nil, &target), io.EOF)
	assert.ErrorIs(t, DecodeJSONBody(strings.NewReader(""), &target), io.EOF)
	assert.ErrorIs(t, DecodeJSONBody(strings.NewReader(`{"a":1}{"b":2}`), &target), ErrTrailingData)
	assert.NoError(t, DecodeJSONBody(strings.NewReader("{\"a\":1}\n\n"), &target))
}

func TestHandleDecodeError(t *testing.T) {
	decode := func(body string, v interface{}) error {
		return DecodeJSONBody(strings.NewReader(body), v)
	}
	var object map[string]interface{}
	var typed struct {
		Count int `json:"count"`
	}

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"empty", decode("", &object), "Request body for consent item is empty."},
		{"truncated", decode(`{"a":`, &object), "Malformed JSON in consent item request body."},
		{"syntax", decode(`{a}`, &object), "Malformed JSON in consent item request body."},
		{"not an object", decode(`[1]`, &object), "Request body for consent item must be a JSON object."},
		{"field type", decode(`{"count":"x"}`, &typed), "Invalid type for field 'count' in consent item request body."},
		{"trailing", decode(`{} []`, &object), "Unexpected data after the consent item JSON object."},
		{"generic", stderrors.New("boom"), "Invalid JSON payload for consent item."},
		{"json prefixed", stderrors.New("json: unknown field \"x\""), "Invalid JSON payload for consent item: unknown field \"x\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HandleDecodeError(tt.err, "consent item"))
		})
	}
}

func TestHandleError(t *testing.T) {
	_ = log.Init("DEBUG")

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "client error writes its message",
			err:          customerrors.NewClientError(customerrors.INVALID_CONSENT_ITEM_REQUEST, http.StatusBadRequest),
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid request: Body is missing or invalid.",
		},
		{
			name:         "server error writes its description",
			err:          customerrors.NewServerErrorWithTraceID(customerrors.CONSENT_ITEM_EMPTY_RESPONSE, nil, "trace-1"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Error: Item created but returned null.",
		},
		{
			name:         "unknown error",
			err:          stderrors.New("boom"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Error: Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedBody, rec.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestWriteJSONResponse(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteJSONResponse(rec, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
