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

package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// IDField is the JSON name of the server assigned identifier.
const IDField = "id"

// ConsentItem is one consent submission. ID is assigned by the service; Fields holds the
// caller supplied consent attributes, passed through untouched. On the wire both are
// flattened into a single JSON object.
type ConsentItem struct {
	ID     string                 `json:"-"`
	Fields map[string]interface{} `json:"-"`
}

// MarshalJSON writes the fields and the id as one object.
func (c ConsentItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Fields)+1)
	for key, value := range c.Fields {
		out[key] = value
	}
	out[IDField] = c.ID
	return json.Marshal(out)
}

// UnmarshalJSON reads a JSON object. A string "id" is kept in ID, any other "id" is
// dropped; every other member lands in Fields.
func (c *ConsentItem) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]interface{}
	if err := decoder.Decode(&raw); err != nil {
		return err
	}

	c.ID = ""
	if id, ok := raw[IDField].(string); ok {
		c.ID = id
	}
	delete(raw, IDField)

	fields := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		fields[key] = normalizeNumbers(value)
	}
	c.Fields = fields
	return nil
}

// normalizeNumbers turns json.Number into int64 when it fits and into float64 when it has a
// fraction or exponent. Integers beyond the int64 range stay json.Number so their digits
// are written back unchanged.
func normalizeNumbers(value interface{}) interface{} {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if !strings.ContainsAny(v.String(), ".eE") {
			return v
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v
	case map[string]interface{}:
		for key, item := range v {
			v[key] = normalizeNumbers(item)
		}
		return v
	case []interface{}:
		for i, item := range v {
			v[i] = normalizeNumbers(item)
		}
		return v
	default:
		return v
	}
}
