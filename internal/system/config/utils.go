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

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/srk/consent-service/internal/system/constants"
	"gopkg.in/yaml.v2"
)

// LoadEnvFiles loads every .env file matching pattern under home into the process
// environment. Variables already set are left untouched. It returns the files loaded.
func LoadEnvFiles(home, pattern string) ([]string, error) {
	envFiles, err := filepath.Glob(path.Join(home, pattern))
	if err != nil {
		return nil, err
	}
	if len(envFiles) == 0 {
		return nil, nil
	}
	if err := godotenv.Load(envFiles...); err != nil {
		return nil, err
	}
	return envFiles, nil
}

// LoadConfig reads the deployment file, expands environment references, applies defaults
// and validates the result. Expanded values are escaped for double-quoted scalars.
func LoadConfig(home, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(home, filePath))
	if err != nil {
		return nil, err
	}

	expanded := os.Expand(string(file), expandYAMLEnv)

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// yamlEscaper escapes values for a double-quoted YAML scalar. Placeholders that may carry
// quotes or backslashes (keys, endpoints) must be written inside double quotes.
var yamlEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

func expandYAMLEnv(name string) string {
	return yamlEscaper.Replace(os.Getenv(name))
}

// Validate checks the struct constraints of the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			problems := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				problems = append(problems, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Addr.Host == "" {
		c.Addr.Host = constants.DefaultHost
	}
	if c.Addr.Port == 0 {
		c.Addr.Port = constants.DefaultPort
	}
	if c.Log.LogLevel == "" {
		c.Log.LogLevel = constants.DefaultLogLevel
	}
	if c.DocumentStore.Type == "" {
		c.DocumentStore.Type = constants.DocumentStoreMongoDB
	}
	if c.DocumentStore.ConnectTimeout == 0 {
		c.DocumentStore.ConnectTimeout = constants.DefaultConnectTimeout
	}
}
