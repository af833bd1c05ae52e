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

package scripts

// Container names are interpolated with %s after being quoted with pq.QuoteIdentifier.

var CreateDocumentContainer = map[string]string{
	"postgres": `CREATE TABLE IF NOT EXISTS %s (
		id         TEXT PRIMARY KEY,
		document   JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

var InsertDocument = map[string]string{
	"postgres": `INSERT INTO %s (id, document) VALUES ($1, $2::jsonb) RETURNING document, created_at`,
}

var PingDocumentStore = map[string]string{
	"postgres": `SELECT 1`,
}
