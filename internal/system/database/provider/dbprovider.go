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

package provider

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/srk/consent-service/internal/system/config"
	"github.com/srk/consent-service/internal/system/constants"
	"github.com/srk/consent-service/internal/system/database/client"
	"github.com/srk/consent-service/internal/system/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const appName = "consent-service"

// DocumentStoreProviderInterface defines the interface for getting document clients.
type DocumentStoreProviderInterface interface {
	Connect(ctx context.Context) (client.DocumentClientInterface, error)
}

// DocumentStoreProvider opens the document client described by the configuration.
// The returned client is meant to be opened once per process and shared.
type DocumentStoreProvider struct {
	config config.DocumentStoreConfig
}

// NewDocumentStoreProvider creates a new instance of DocumentStoreProvider.
func NewDocumentStoreProvider(cfg config.DocumentStoreConfig) DocumentStoreProviderInterface {

	return &DocumentStoreProvider{config: cfg}
}

// Connect opens and verifies a connection to the configured document store.
func (p *DocumentStoreProvider) Connect(ctx context.Context) (client.DocumentClientInterface, error) {

	switch p.config.Type {
	case constants.DocumentStoreMongoDB:
		return p.connectMongo(ctx)
	case constants.DocumentStorePostgres:
		return p.connectPostgres(ctx)
	default:
		return nil, fmt.Errorf("unsupported document store type: %q", p.config.Type)
	}
}

func (p *DocumentStoreProvider) connectMongo(ctx context.Context) (client.DocumentClientInterface, error) {

	ctx, cancel := context.WithTimeout(ctx, p.config.ConnectTimeout)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, getMongoOptions(p.config))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to document store")
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		_ = mongoClient.Disconnect(context.Background())
		return nil, errors.Wrap(err, "failed to ping document store")
	}

	log.GetLogger().Info("Connected to document store",
		log.String("type", constants.DocumentStoreMongoDB),
		log.String("database", p.config.Database))
	return client.NewMongoClient(mongoClient, p.config.Database), nil
}

func (p *DocumentStoreProvider) connectPostgres(ctx context.Context) (client.DocumentClientInterface, error) {

	dsn, err := getPostgresDSN(p.config)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to document store")
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.ConnectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping document store")
	}

	log.GetLogger().Info("Connected to document store",
		log.String("type", constants.DocumentStorePostgres),
		log.String("database", p.config.Database))
	return client.NewPostgresClient(db), nil
}

// getMongoOptions builds the client options. Retryable writes are turned off since
// Cosmos DB for MongoDB rejects them.
func getMongoOptions(cfg config.DocumentStoreConfig) *options.ClientOptions {

	opts := options.Client().
		ApplyURI(cfg.Endpoint).
		SetAppName(appName).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetRetryWrites(false)
	if cfg.Key != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Account,
			Password: cfg.Key,
		})
	}
	return opts
}

// getPostgresDSN returns a key/value DSN for lib/pq. URL endpoints are converted first so
// the database and key settings can be appended; later keys win in lib/pq.
func getPostgresDSN(cfg config.DocumentStoreConfig) (string, error) {

	dsn := cfg.Endpoint
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		converted, err := pq.ParseURL(dsn)
		if err != nil {
			return "", errors.Wrap(err, "invalid document store endpoint")
		}
		dsn = converted
	}

	parts := []string{dsn}
	if cfg.Database != "" {
		parts = append(parts, "dbname="+quoteDSNValue(cfg.Database))
	}
	if cfg.Key != "" {
		parts = append(parts, "password="+quoteDSNValue(cfg.Key))
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

func quoteDSNValue(value string) string {

	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return "'" + escaped + "'"
}
