// Package http implements the REST transport of the strain catalog.
//
// It wires the chi router, the strain and health handlers and the middleware
// chain (panic recovery, trace ids, access logging, Prometheus metrics, CORS,
// compression and per-request timeouts) in front of the service layer.
package http
