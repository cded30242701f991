package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

const (
	// healthCheckTimeout bounds the database ping of the health probes.
	healthCheckTimeout = 2 * time.Second
	// apiVersion is reported by the health endpoint.
	apiVersion = "1.0.0"
)
