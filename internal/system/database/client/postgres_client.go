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
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/srk/consent-service/internal/system/constants"
	"github.com/srk/consent-service/internal/system/database/scripts"
	"github.com/srk/consent-service/internal/system/log"
)

// PostgresClient stores documents as JSONB rows, one table per container.
type PostgresClient struct {
	db *sql.DB
}

// NewPostgresClient creates a new instance of PostgresClient with the provided database connection.
func NewPostgresClient(db *sql.DB) *PostgresClient {

	return &PostgresClient{
		db: db,
	}
}

// InitContainer creates the container table if it is missing.
func (client *PostgresClient) InitContainer(ctx context.Context, container string) error {

	query := fmt.Sprintf(scripts.CreateDocumentContainer[constants.DocumentStorePostgres], pq.QuoteIdentifier(container))
	if _, err := client.db.ExecContext(ctx, query); err != nil {
		return errors.Wrapf(err, "failed to create container table %s", container)
	}
	log.GetLogger().Info("Document container is ready", log.String("container", container))
	return nil
}

// CreateDocument inserts the document and returns the row as persisted.
func (client *PostgresClient) CreateDocument(ctx context.Context, container string,
	document Document) (*CreateResponse, error) {

	id, _ := document["id"].(string)
	if id == "" {
		return nil, &StoreError{Message: "document id is required"}
	}

	payload, err := json.Marshal(document)
	if err != nil {
		return nil, newStoreError(errors.Wrap(err, "failed to encode document"))
	}

	query := fmt.Sprintf(scripts.InsertDocument[constants.DocumentStorePostgres], pq.QuoteIdentifier(container))
	var (
		raw     []byte
		created sql.NullTime
	)
	err = client.db.QueryRowContext(ctx, query, id, string(payload)).Scan(&raw, &created)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return &CreateResponse{StatusCode: constants.StoreStatusCreated}, nil
	case err != nil:
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return &CreateResponse{StatusCode: constants.StoreStatusConflict}, nil
		}
		return nil, newStoreError(err)
	}

	var stored Document
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, newStoreError(errors.Wrap(err, "failed to decode stored document"))
	}
	if stored != nil && created.Valid {
		stored[SystemTimestampField] = created.Time.Unix()
	}
	return &CreateResponse{StatusCode: constants.StoreStatusCreated, Document: stored}, nil
}

// Ping runs a lightweight query to ensure DB connectivity.
func (client *PostgresClient) Ping(ctx context.Context) error {

	_, err := client.db.ExecContext(ctx, scripts.PingDocumentStore[constants.DocumentStorePostgres])
	return err
}

// Close closes the database connection.
func (client *PostgresClient) Close(_ context.Context) error {

	return client.db.Close()
}
