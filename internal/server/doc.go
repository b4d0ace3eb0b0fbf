// Package server implements the HTTP server using Echo framework.
//
// Routes: root (environment info + collection names), health (live/ready),
// version, and Prometheus metrics.
package server
