// Package metrics holds the Prometheus collectors updated by the upload path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UploadsAccepted counts uploaded files that passed signature validation.
	UploadsAccepted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resto_upload_accepted_total",
			Help: "Uploaded files that passed image signature validation",
		},
		[]string{"format"},
	)

	// UploadsRejected counts uploaded files removed for a bad signature.
	UploadsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resto_upload_rejected_total",
			Help: "Uploaded files rejected and removed by image signature validation",
		},
		[]string{"detected"},
	)

	// RollbackFiles counts files removed while rolling back a failed request.
	RollbackFiles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "resto_upload_rollback_files_total",
			Help: "Files removed while rolling back failed requests",
		},
	)

	// SupersededFiles counts old files removed after a successful replacement.
	SupersededFiles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "resto_upload_superseded_files_total",
			Help: "Replaced files removed after the new record was saved",
		},
	)
)
