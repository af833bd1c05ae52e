package constants

import "time"

const ApiBasePath = "/v1.0"
const ConsentSearchApiPath = "consent/search"
const HealthApiPath = "/health"
const ReadinessApiPath = "/ready"
const MetricsApiPath = "/metrics"

const DefaultConfigFile = "repository/conf/deployment.yaml"
const EnvFilePattern = "config/*.env"

const TraceIDHeader = "X-Trace-Id"

type contextKey string

const TraceIDContextKey contextKey = "trace_id"

// Document store types accepted in document_store.type.
const (
	DocumentStoreMongoDB  = "mongodb"
	DocumentStorePostgres = "postgres"
)

// Status codes reported by the document store for a create operation.
const (
	StoreStatusCreated  = 201
	StoreStatusConflict = 409
)

const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 8080
	DefaultLogLevel       = "INFO"
	DefaultConnectTimeout = 10 * time.Second
	ShutdownTimeout       = 10 * time.Second
)

// Submission outcomes, used as metric labels.
const (
	OutcomeCreated        = "created"
	OutcomeInvalidRequest = "invalid_request"
	OutcomeEmptyResponse  = "empty_response"
	OutcomeRejected       = "rejected"
	OutcomeStoreFailure   = "store_failure"
)
