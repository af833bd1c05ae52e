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

//go:build integration

package client

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/srk/consent-service/internal/system/constants"
	"github.com/srk/consent-service/internal/system/log"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const testContainer = "consent_items"

func startContainer(t *testing.T, req testcontainers.ContainerRequest) (string, string) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, req.ExposedPorts[0])
	require.NoError(t, err)
	return host, port.Port()
}

func setupMongoClient(t *testing.T) *MongoClient {
	t.Helper()
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	})

	ctx := context.Background()
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(fmt.Sprintf("mongodb://%s:%s", host, port)))
	require.NoError(t, err)
	require.NoError(t, mongoClient.Ping(ctx, nil))

	c := NewMongoClient(mongoClient, "consents")
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	return c
}

func setupPostgresClient(t *testing.T) *PostgresClient {
	t.Helper()
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	})

	dsn := fmt.Sprintf("host=%s port=%s user=testuser password=testpass dbname=testdb sslmode=disable", host, port)
	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	c := NewPostgresClient(db)
	t.Cleanup(func() { _ = c.Close(context.Background()) })
	return c
}

func exerciseDocumentClient(t *testing.T, c DocumentClientInterface) {
	ctx := context.Background()

	require.NoError(t, c.InitContainer(ctx, testContainer))
	require.NoError(t, c.InitContainer(ctx, testContainer), "container init is idempotent")
	require.NoError(t, c.Ping(ctx))

	response, err := c.CreateDocument(ctx, testContainer, Document{
		"id":      "item-1",
		"purpose": "marketing",
		"granted": true,
		"scopes":  []interface{}{"email", "sms"},
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StoreStatusCreated, response.StatusCode)
	require.NotNil(t, response.Document)
	assert.Equal(t, "item-1", response.Document["id"])
	assert.Equal(t, "marketing", response.Document["purpose"])
	assert.Equal(t, true, response.Document["granted"])
	assert.Equal(t, []interface{}{"email", "sms"}, response.Document["scopes"])
	assert.Contains(t, response.Document, SystemTimestampField)

	duplicate, err := c.CreateDocument(ctx, testContainer, Document{"id": "item-1"})
	require.NoError(t, err)
	assert.Equal(t, constants.StoreStatusConflict, duplicate.StatusCode)
	assert.Nil(t, duplicate.Document)
}

func TestMongoClient_Integration(t *testing.T) {
	_ = log.Init("DEBUG")
	exerciseDocumentClient(t, setupMongoClient(t))
}

func TestPostgresClient_Integration(t *testing.T) {
	_ = log.Init("DEBUG")
	exerciseDocumentClient(t, setupPostgresClient(t))
}

func TestMongoClient_StoreManagedKeys_Integration(t *testing.T) {
	_ = log.Init("DEBUG")
	c := setupMongoClient(t)
	ctx := context.Background()
	require.NoError(t, c.InitContainer(ctx, testContainer))

	response, err := c.CreateDocument(ctx, testContainer, Document{"id": "item-2", "_id": "caller", "_ts": "caller"})

	require.NoError(t, err)
	require.NotNil(t, response.Document)
	assert.NotContains(t, response.Document, "_id")
	assert.IsType(t, int64(0), response.Document[SystemTimestampField])
}
