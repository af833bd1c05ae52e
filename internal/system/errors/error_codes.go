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

package errors

const errorPrefix = "CNS-"

var (
	// Server error codes

	CONSENT_ITEM_EMPTY_RESPONSE = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Item created but returned null.",
	}

	CONSENT_ITEM_CREATE_REJECTED = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Failed to create item in document store.",
	}

	CONSENT_ITEM_STORE_FAILURE = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Document store operation failed.",
	}

	DOCUMENT_STORE_UNAVAILABLE = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Document store is not reachable.",
	}

	// Client error codes

	INVALID_CONSENT_ITEM_REQUEST = ErrorMessage{
		Code:    errorPrefix + "10001",
		Message: "Invalid request: Body is missing or invalid.",
	}
)
