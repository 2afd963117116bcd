/*
Copyright (c) 2014 VMware, Inc. All Rights Reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sel

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Reasons a record was skipped
const (
	skipTruncated      = "truncated"
	skipCompletionCode = "completion_code"
)

// Metrics counts the work done by a Client. A nil *Metrics is valid and
// counts nothing.
type Metrics struct {
	Requests *prometheus.CounterVec
	Records  prometheus.Counter
	Skipped  *prometheus.CounterVec
	Retries  prometheus.Counter
}

// NewMetrics creates the SEL counters and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipmi_sel_requests_total",
				Help: "Number of SEL storage commands sent to the BMC",
			},
			[]string{"command"},
		),
		Records: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ipmi_sel_records_total",
				Help: "Number of SEL records decoded",
			},
		),
		Skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipmi_sel_records_skipped_total",
				Help: "Number of SEL records skipped during a walk",
			},
			[]string{"reason"},
		),
		Retries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ipmi_sel_zero_next_retries_total",
				Help: "Number of Get SEL Entry retries after a next record id of 0",
			},
		),
	}

	reg.MustRegister(m.Requests, m.Records, m.Skipped, m.Retries)

	return m
}

func (m *Metrics) request(command string) {
	if m != nil {
		m.Requests.WithLabelValues(command).Inc()
	}
}

func (m *Metrics) record() {
	if m != nil {
		m.Records.Inc()
	}
}

func (m *Metrics) skipped(reason string) {
	if m != nil {
		m.Skipped.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) retry() {
	if m != nil {
		m.Retries.Inc()
	}
}
