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

package client

import (
	"context"
	"fmt"
)

// Document is a schemaless record as exchanged with the document store.
type Document map[string]interface{}

// CreateResponse is the outcome of a create operation the store answered.
// Document is the stored copy and may be nil even when StatusCode reports success.
type CreateResponse struct {
	StatusCode int
	Document   Document
}

// StoreError is raised when the store operation itself fails (transport, auth,
// server side errors) rather than answering with a status.
type StoreError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *StoreError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func newStoreError(err error) *StoreError {
	return &StoreError{Message: err.Error(), Err: err}
}

// DocumentClientInterface defines the operations used against the document store.
type DocumentClientInterface interface {
	// InitContainer makes sure the named container exists.
	InitContainer(ctx context.Context, container string) error
	// CreateDocument inserts a new document keyed by its "id" field.
	CreateDocument(ctx context.Context, container string, document Document) (*CreateResponse, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
