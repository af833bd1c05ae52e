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

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus collectors for consent submissions.
type Metrics struct {
	ConsentSubmissions *prometheus.CounterVec
	StoreCreateLatency prometheus.Histogram
	registry           *prometheus.Registry
}

// New registers the consent collectors, plus the Go and process collectors, on a
// private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		ConsentSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "consent_submissions_total",
			Help: "Total number of consent submissions, labeled by outcome",
		}, []string{"outcome"}),
		StoreCreateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "consent_store_create_latency_seconds",
			Help:    "Latency of document store create operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		registry: registry,
	}
}

// IncrementSubmissions counts one submission with the given outcome.
func (m *Metrics) IncrementSubmissions(outcome string) {
	if m == nil {
		return
	}
	m.ConsentSubmissions.WithLabelValues(outcome).Inc()
}

// ObserveStoreCreateLatency records the latency of one store create call.
func (m *Metrics) ObserveStoreCreateLatency(durationSeconds float64) {
	if m == nil {
		return
	}
	m.StoreCreateLatency.Observe(durationSeconds)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
