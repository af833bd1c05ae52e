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
	"time"

	"github.com/pkg/errors"
	"github.com/srk/consent-service/internal/system/constants"
	"github.com/srk/consent-service/internal/system/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SystemTimestampField is the store managed creation timestamp (unix seconds) added to
// every stored document.
const SystemTimestampField = "_ts"

const mongoIDField = "_id"

// MongoClient is the MongoDB (and Cosmos DB for MongoDB) implementation of
// DocumentClientInterface.
type MongoClient struct {
	client   *mongo.Client
	database *mongo.Database
	now      func() time.Time
}

// NewMongoClient creates a document client over a connected mongo client.
func NewMongoClient(client *mongo.Client, databaseName string) *MongoClient {

	return &MongoClient{
		client:   client,
		database: client.Database(databaseName),
		now:      time.Now,
	}
}

// InitContainer creates the collection when it does not exist yet.
func (c *MongoClient) InitContainer(ctx context.Context, container string) error {

	logger := log.GetLogger()
	names, err := c.database.ListCollectionNames(ctx, bson.M{"name": container})
	if err != nil {
		return errors.Wrapf(err, "failed to list collections of database %s", c.database.Name())
	}
	if len(names) > 0 {
		logger.Debug("Document container already exists", log.String("container", container))
		return nil
	}

	if err := c.database.CreateCollection(ctx, container); err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceExists" {
			return nil
		}
		return errors.Wrapf(err, "failed to create collection %s", container)
	}
	logger.Info("Document container created", log.String("container", container))
	return nil
}

// CreateDocument inserts the document and reads the stored copy back.
func (c *MongoClient) CreateDocument(ctx context.Context, container string, document Document) (*CreateResponse, error) {

	id, _ := document["id"].(string)
	if id == "" {
		return nil, &StoreError{Message: "document id is required"}
	}

	record := newMongoRecord(document, id, c.now())
	collection := c.database.Collection(container)
	if _, err := collection.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &CreateResponse{StatusCode: constants.StoreStatusConflict}, nil
		}
		return nil, newMongoStoreError(err)
	}

	var stored bson.M
	err := collection.FindOne(ctx, bson.M{mongoIDField: id}).Decode(&stored)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return &CreateResponse{StatusCode: constants.StoreStatusCreated}, nil
	}
	if err != nil {
		return nil, newMongoStoreError(err)
	}

	delete(stored, mongoIDField)
	return &CreateResponse{
		StatusCode: constants.StoreStatusCreated,
		Document:   normalizeDocument(stored),
	}, nil
}

// newMongoRecord builds the stored record. "_id" and "_ts" are store managed: caller
// values under those keys are replaced, and "_id" is not returned on read-back.
func newMongoRecord(document Document, id string, now time.Time) bson.M {

	record := make(bson.M, len(document)+2)
	for key, value := range document {
		record[key] = value
	}
	record[mongoIDField] = id
	record[SystemTimestampField] = now.Unix()
	return record
}

// Ping checks that the primary is reachable.
func (c *MongoClient) Ping(ctx context.Context) error {

	return c.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying mongo client.
func (c *MongoClient) Close(ctx context.Context) error {

	return c.client.Disconnect(ctx)
}

func newMongoStoreError(err error) *StoreError {

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return &StoreError{Message: fmt.Sprintf("%s (code %d)", cmdErr.Message, cmdErr.Code), Err: err}
	}
	return newStoreError(err)
}

// normalizeDocument turns decoded BSON containers into plain maps and slices.
func normalizeDocument(in bson.M) Document {

	out := make(Document, len(in))
	for key, value := range in {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value interface{}) interface{} {

	switch v := value.(type) {
	case primitive.M:
		return map[string]interface{}(normalizeDocument(v))
	case primitive.D:
		return map[string]interface{}(normalizeDocument(v.Map()))
	case primitive.A:
		items := make([]interface{}, len(v))
		for i, item := range v {
			items[i] = normalizeValue(item)
		}
		return items
	case primitive.DateTime:
		return v.Time().UTC()
	default:
		return v
	}
}
