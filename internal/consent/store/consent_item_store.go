/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License. You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package store

import (
	"context"
	"fmt"

	"github.com/srk/consent-service/internal/consent/model"
	"github.com/srk/consent-service/internal/system/database/client"
	"github.com/srk/consent-service/internal/system/log"
)

// CreateItemResponse is the store's answer to a create operation. Item is nil when the
// store did not return the stored copy.
type CreateItemResponse struct {
	StatusCode int
	Item       *model.ConsentItem
}

// ConsentItemStoreInterface is the create-operation the consent service persists through.
type ConsentItemStoreInterface interface {
	CreateItem(ctx context.Context, item *model.ConsentItem) (*CreateItemResponse, error)
}

// ConsentItemStore writes consent items into one container of the document store.
type ConsentItemStore struct {
	client    client.DocumentClientInterface
	container string
}

// NewConsentItemStore creates a store over a shared document client.
func NewConsentItemStore(dbClient client.DocumentClientInterface, container string) *ConsentItemStore {

	return &ConsentItemStore{
		client:    dbClient,
		container: container,
	}
}

// CreateItem inserts the item. Errors returned by the document client are passed through
// unchanged so callers can inspect *client.StoreError.
func (s *ConsentItemStore) CreateItem(ctx context.Context, item *model.ConsentItem) (*CreateItemResponse, error) {

	logger := log.GetLogger()
	response, err := s.client.CreateDocument(ctx, s.container, toDocument(item))
	if err != nil {
		logger.Debug(fmt.Sprintf("Failed to create consent item: %s", item.ID), log.Error(err))
		return nil, err
	}

	logger.Debug(fmt.Sprintf("Document store answered create of consent item: %s", item.ID),
		log.Int("status_code", response.StatusCode))
	if response.Document == nil {
		return &CreateItemResponse{StatusCode: response.StatusCode}, nil
	}
	return &CreateItemResponse{
		StatusCode: response.StatusCode,
		Item:       fromDocument(response.Document),
	}, nil
}

func toDocument(item *model.ConsentItem) client.Document {

	document := make(client.Document, len(item.Fields)+1)
	for key, value := range item.Fields {
		document[key] = value
	}
	document[model.IDField] = item.ID
	return document
}

func fromDocument(document client.Document) *model.ConsentItem {

	item := &model.ConsentItem{Fields: make(map[string]interface{}, len(document))}
	for key, value := range document {
		if key == model.IDField {
			item.ID, _ = value.(string)
			continue
		}
		item.Fields[key] = value
	}
	return item
}
