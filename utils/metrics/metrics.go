// Package metrics exposes the Prometheus instruments for the Fieldboard
// backend. Clients of the image proxy only ever see coarse error messages;
// the per-kind outcome labels here are where the distinct internal error
// taxonomy stays observable.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ImageProxyRequests counts proxy fetches by terminal outcome. Outcome labels
// mirror the internal error kinds ("success", "invalid_url", "blocked_host",
// "redirect_error", "too_many_redirects", "not_an_image",
// "payload_too_large", "timeout", "network_error").
var ImageProxyRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "fieldboard",
		Subsystem: "image_proxy",
		Name:      "requests_total",
		Help:      "Image proxy requests by terminal outcome.",
	},
	[]string{"outcome"},
)

// ImageProxyBytes totals the image bytes returned to clients.
var ImageProxyBytes = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "fieldboard",
		Subsystem: "image_proxy",
		Name:      "response_bytes_total",
		Help:      "Total image bytes served through the proxy.",
	},
)

// WorkspaceOperations counts workspace snapshot loads and saves.
var WorkspaceOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "fieldboard",
		Subsystem: "workspace",
		Name:      "operations_total",
		Help:      "Workspace snapshot operations by kind and outcome.",
	},
	[]string{"operation", "outcome"},
)

// OutcomeLabel converts an operation error into the success/failure label
// used by WorkspaceOperations.
func OutcomeLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
