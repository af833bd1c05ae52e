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

package config

import "time"

type AddrConfig struct {
	Port int    `yaml:"port" validate:"min=1,max=65535"`
	Host string `yaml:"host"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

type AuthConfig struct {
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// DocumentStoreConfig holds the connection parameters of the consent item store.
//
// For the mongodb type Endpoint is a MongoDB connection string (an Azure Cosmos DB for
// MongoDB account works as well) and Key, when set, is used as the password of Account.
// For the postgres type Endpoint is a lib/pq DSN and Key is the password.
// Container is the collection or table the items are written to.
type DocumentStoreConfig struct {
	Type           string        `yaml:"type" validate:"oneof=mongodb postgres"`
	Endpoint       string        `yaml:"endpoint" validate:"required"`
	Key            string        `yaml:"key"`
	Account        string        `yaml:"account"`
	Database       string        `yaml:"database" validate:"required"`
	Container      string        `yaml:"container" validate:"required"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

type Config struct {
	Addr          AddrConfig          `yaml:"addr"`
	Log           LogConfig           `yaml:"log"`
	Auth          AuthConfig          `yaml:"auth"`
	DocumentStore DocumentStoreConfig `yaml:"document_store"`
}
