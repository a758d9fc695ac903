// Package server exposes the solver over HTTP. It serves a JSON solve API,
// a health endpoint, and Prometheus metrics, with security headers and CORS
// handling applied to every route.
package server
