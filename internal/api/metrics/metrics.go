// Package metrics defines all custom Prometheus metrics for the email
// gateway. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mailgw"

// EmailsSentTotal counts messages accepted by the mail transport.
// Label:
//   - sender_role: the role of the authenticated sender (e.g. "mayor")
var EmailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Total number of emails successfully submitted to the transport.",
	},
	[]string{"sender_role"},
)

// EmailSendErrorsTotal counts failed transport submissions.
// Label:
//   - reason: "auth", "connection", "address" or "other"
var EmailSendErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_send_errors_total",
		Help:      "Total number of transport submissions that failed, by classified reason.",
	},
	[]string{"reason"},
)

// AuditWriteFailuresTotal counts audit-store writes that failed after a
// successful dispatch. These are swallowed per the decoupling contract, so
// this counter is the only place they surface besides the log.
var AuditWriteFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_write_failures_total",
		Help:      "Total number of audit log writes that failed after a successful send.",
	},
)

// LoginAttemptsTotal counts login outcomes.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EmailSendDuration measures the transport round trip for a single message.
// Label:
//   - outcome: "success" or "error"
var EmailSendDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "email_send_duration_seconds",
		Help:      "Duration of the SMTP dial and submission for one message.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)
